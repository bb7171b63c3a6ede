// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package kmerge

import (
	"math/rand"
	"slices"
	"testing"
)

func intSlots(vals []int) []*peekSlot[int] {
	out := make([]*peekSlot[int], len(vals))
	for i, v := range vals {
		out[i] = &peekSlot[int]{head: v, iter: FromSlice[int](nil), seq: uint64(i)}
	}
	return out
}

func headsOf(ptrs []*peekSlot[int]) []int {
	out := make([]int, len(ptrs))
	for i, p := range ptrs {
		out[i] = p.head
	}
	return out
}

func checkTwoTierInvariant(t *testing.T, ptrs []*peekSlot[int]) {
	t.Helper()
	n := len(ptrs)
	if n < 2 {
		return
	}
	if ptrs[0].head > ptrs[1].head {
		t.Fatalf("global min violated: ptrs[0]=%d ptrs[1]=%d", ptrs[0].head, ptrs[1].head)
	}
	for i := 1; i < n; i++ {
		left := i * 2
		right := left + 1
		if left < n && ptrs[i].head > ptrs[left].head {
			t.Fatalf("sub-heap violated at %d -> left %d", i, left)
		}
		if right < n && ptrs[i].head > ptrs[right].head {
			t.Fatalf("sub-heap violated at %d -> right %d", i, right)
		}
	}
}

func TestHeapify(t *testing.T) {
	cmp := ByOrd[int]()
	for trial := 0; trial < 50; trial++ {
		n := rand.Intn(20)
		vals := make([]int, n)
		for i := range vals {
			vals[i] = rand.Intn(100)
		}
		ptrs := intSlots(vals)
		heapify(cmp, InsertionOrder, ptrs)
		checkTwoTierInvariant(t, ptrs)
	}
}

func TestPopFrontItemSorted(t *testing.T) {
	cmp := ByOrd[int]()
	vals := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	ptrs := intSlots(vals)
	heapify(cmp, InsertionOrder, ptrs)

	var out []int
	for {
		v, ok := popFrontItem[int](cmp, InsertionOrder, &ptrs)
		if !ok {
			break
		}
		out = append(out, v)
		checkTwoTierInvariant(t, ptrs)
	}
	if !slices.IsSorted(out) {
		t.Fatalf("pop_front_item did not yield sorted output: %v", out)
	}
	if len(out) != len(vals) {
		t.Fatalf("expected %d items, got %d", len(vals), len(out))
	}
}

func TestInsertNewSlot(t *testing.T) {
	cmp := ByOrd[int]()
	ptrs := intSlots([]int{4, 6, 8, 10})
	heapify(cmp, InsertionOrder, ptrs)

	ptrs = append(ptrs, &peekSlot[int]{head: 1, seq: 99, iter: FromSlice[int](nil)})
	insertNewSlot(cmp, InsertionOrder, ptrs)
	checkTwoTierInvariant(t, ptrs)
	if ptrs[0].head != 1 {
		t.Fatalf("expected new minimum 1 at front, got %d", ptrs[0].head)
	}
}

// TestSiftDownElementDeepDescent pins down a sift that must descend two
// levels: the sub-heap rooted at index 1 starts with 100 at the root and
// valid children below (ptrs[2..3] = 1, 50 and ptrs[4..7] = 2, 3, 60, 70),
// so restoring the invariant requires comparing 100 against each level's
// smaller child rather than against whatever was last promoted into the
// hole.
func TestSiftDownElementDeepDescent(t *testing.T) {
	cmp := ByOrd[int]()
	vals := []int{0, 100, 1, 50, 2, 3, 60, 70}
	ptrs := intSlots(vals)

	siftDownElement(cmp, InsertionOrder, ptrs, 1)
	checkTwoTierInvariant(t, ptrs)

	want := []int{0, 1, 2, 50, 100, 3, 60, 70}
	if got := headsOf(ptrs); !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

// TestSiftUpElementDeepAscent pins down the symmetric defect in
// siftUpElement: a freshly appended minimum several levels below the root
// must be compared against the element being lifted at every level, not
// against whatever was last promoted into the hole.
func TestSiftUpElementDeepAscent(t *testing.T) {
	cmp := ByOrd[int]()
	vals := []int{0, 10, 20, 30, 40, 50, 60, 70, 1}
	ptrs := intSlots(vals)

	siftUpElement(cmp, InsertionOrder, ptrs, 8)
	checkTwoTierInvariant(t, ptrs)

	if ptrs[1].head != 1 {
		t.Fatalf("expected 1 to reach the sub-heap root, got %d", ptrs[1].head)
	}
}

func TestDrainAllMatchesPopFrontItem(t *testing.T) {
	cmp := ByOrd[int]()
	vals := []int{9, 1, 4, 6, 2, 8, 3, 0, 7, 5, 10, 11, 12}

	a := intSlots(vals)
	heapify(cmp, InsertionOrder, a)
	var want []int
	for {
		v, ok := popFrontItem[int](cmp, InsertionOrder, &a)
		if !ok {
			break
		}
		want = append(want, v)
	}

	b := intSlots(vals)
	heapify(cmp, InsertionOrder, b)
	got := drainAll[int](cmp, InsertionOrder, &b, 0)

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}
