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

import "io"

// peekSlot holds one live input's already-peeked head element plus the
// remainder of that input. Slots are individually heap-allocated and
// referenced by pointer from both the insertion-order slots array and the
// heap-permuted ptrs array, so permuting or growing either array only ever
// copies pointers, never a peekSlot's fields.
type peekSlot[E any] struct {
	head E
	iter Iterator[E]
	// seq is assigned from a per-engine monotonic counter when the slot is
	// constructed. Tie-breakers compare seq directly instead of comparing
	// addresses, since Go generic element values carry no address identity
	// a caller can rely on.
	seq uint64
}

func newPeekSlot[E any](it Iterator[E], seq uint64) (*peekSlot[E], bool) {
	head, ok := it.Next()
	if !ok {
		return nil, false
	}
	return &peekSlot[E]{head: head, iter: it, seq: seq}, true
}

// advance pulls the next element from the slot's iterator, replacing head.
// It reports whether the slot still has a live head afterward. A slot
// whose iterator is exhausted is responsible for closing it immediately
// (the Go analogue of the original library's "I is dropped during slot
// destruction" rule), rather than waiting for the whole engine to be
// closed.
func (s *peekSlot[E]) advance() bool {
	head, ok := s.iter.Next()
	if !ok {
		closeSlotIter(s.iter)
		return false
	}
	s.head = head
	return true
}

// closeSlotIter closes it if it implements io.Closer. Any error is
// discarded: advance has no return path to report it through, unlike an
// explicit MergeIter.Close call on a slot that is still live.
func closeSlotIter[E any](it Iterator[E]) {
	if c, ok := it.(io.Closer); ok {
		c.Close()
	}
}
