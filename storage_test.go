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

func TestDynamicStorageFiltersEmptyIterators(t *testing.T) {
	d := NewDynamicStorage[int]()
	d.AddAll([]Iterator[int]{
		FromSlice([]int{1, 2}),
		FromSlice[int](nil),
		FromSlice([]int{3}),
	})
	if d.Len() != 2 {
		t.Fatalf("expected 2 non-empty slots, got %d", d.Len())
	}
}

func TestInlineStorageCap(t *testing.T) {
	in := NewInlineStorage[int](4)
	if in.Cap() != 4 {
		t.Fatalf("expected cap 4, got %d", in.Cap())
	}
	if in.Len() != 0 {
		t.Fatalf("expected empty storage, got len %d", in.Len())
	}
}

func TestInlineStorageSkipsEmptyIteratorWithoutConsumingCapacity(t *testing.T) {
	in := NewInlineStorage[int](1)
	added, err := in.TryAdd(FromSlice[int](nil))
	if added || err != nil {
		t.Fatalf("expected no-op for an empty iterator, got added=%v err=%v", added, err)
	}
	if in.Len() != 0 {
		t.Fatal("capacity should not be consumed by an empty iterator")
	}
	if added, err := in.TryAdd(FromSlice([]int{1})); !added || err != nil {
		t.Fatalf("expected the real add to succeed, got added=%v err=%v", added, err)
	}
}
