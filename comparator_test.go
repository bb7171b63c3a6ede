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

import "testing"

func TestByOrd(t *testing.T) {
	cmp := ByOrd[int]()
	if cmp.Compare(1, 2) >= 0 {
		t.Fatal("1 should sort before 2")
	}
	if cmp.Compare(2, 1) <= 0 {
		t.Fatal("2 should sort after 1")
	}
	if cmp.Compare(1, 1) != 0 {
		t.Fatal("equal values should compare equal")
	}
}

func TestByKey(t *testing.T) {
	type rec struct{ n string }
	cmp := ByKey(func(r rec) string { return r.n })
	if cmp.Compare(rec{"a"}, rec{"b"}) >= 0 {
		t.Fatal("a should sort before b")
	}
}

func TestMaxFirst(t *testing.T) {
	cmp := MaxFirst(ByOrd[int]())
	if cmp.Compare(2, 1) >= 0 {
		t.Fatal("MaxFirst should reverse the underlying comparator")
	}
}

func TestChain(t *testing.T) {
	type rec struct{ a, b int }
	cmp := Chain(
		ByKey(func(r rec) int { return r.a }),
		ByKey(func(r rec) int { return r.b }),
	)
	if cmp.Compare(rec{1, 5}, rec{1, 3}) <= 0 {
		t.Fatal("expected secondary key to break the tie")
	}
	if cmp.Compare(rec{1, 9}, rec{2, 0}) >= 0 {
		t.Fatal("expected primary key to dominate")
	}
}

func TestCompareSlotsTieBreak(t *testing.T) {
	cmp := ByOrd[int]()
	a := &peekSlot[int]{head: 5, seq: 1}
	b := &peekSlot[int]{head: 5, seq: 2}

	if compareSlots(cmp, InsertionOrder, a, b) >= 0 {
		t.Fatal("InsertionOrder should prefer the earlier seq")
	}
	if compareSlots(cmp, ReverseInsertionOrder, a, b) <= 0 {
		t.Fatal("ReverseInsertionOrder should prefer the later seq")
	}
	if compareSlots(cmp, Unspecified, a, b) != 0 {
		t.Fatal("Unspecified should not break the tie")
	}
}
