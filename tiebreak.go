// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package kmerge

// TieBreaker selects how MergeIter orders two slots whose heads compare
// equal under the primary Comparator.
type TieBreaker int

const (
	// InsertionOrder yields the slot that was added to the engine earlier.
	// This is the default and matches the original library's "stable"
	// tie-breaking.
	InsertionOrder TieBreaker = iota
	// ReverseInsertionOrder yields the slot that was added to the engine
	// more recently.
	ReverseInsertionOrder
	// Unspecified leaves equal heads in whatever order the heap happens to
	// produce them. It never inspects insertion sequence numbers, which
	// makes it marginally cheaper than the other two.
	Unspecified
)

// compareSlots orders a and b for heap purposes: first by cmp applied to
// their heads, then, if equal, by tb.
func compareSlots[E any](cmp Comparator[E], tb TieBreaker, a, b *peekSlot[E]) int {
	if r := cmp.Compare(a.head, b.head); r != 0 {
		return r
	}
	switch tb {
	case ReverseInsertionOrder:
		switch {
		case a.seq > b.seq:
			return -1
		case a.seq < b.seq:
			return 1
		default:
			return 0
		}
	case Unspecified:
		return 0
	default: // InsertionOrder
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	}
}
