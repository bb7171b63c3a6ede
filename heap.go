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

// This file maintains the two-tier ordering invariant over ptrs[0:len]:
//
//   - ptrs[0] dereferences to the global minimum head.
//   - ptrs[1] is the root of a binary min-heap covering indices [1, len),
//     where the children of index i are 2i and 2i+1.
//   - head(ptrs[0]) <= head(ptrs[1]).
//
// Keeping the global minimum outside the sub-heap means a long monotone run
// from a single dominant input costs one comparison per element and no
// sifting at all; a sift-down is only needed once the advanced head falls
// behind the runner-up.

func less[E any](cmp Comparator[E], tb TieBreaker, a, b *peekSlot[E]) bool {
	return compareSlots(cmp, tb, a, b) < 0
}

// heapify arranges ptrs[0:len] to satisfy the two-tier invariant. Callers
// must hold no outstanding hole over ptrs.
func heapify[E any](cmp Comparator[E], tb TieBreaker, ptrs []*peekSlot[E]) {
	n := len(ptrs)
	if n <= 1 {
		return
	}
	for p := n / 2; p >= 1; p-- {
		siftDownElement(cmp, tb, ptrs, p)
	}
	if less(cmp, tb, ptrs[1], ptrs[0]) {
		ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
		siftDownElement(cmp, tb, ptrs, 1)
	}
}

// siftDownElement restores the sub-heap invariant for the node at p,
// 1 <= p < len(ptrs). It uses a hole so that a panicking comparator still
// leaves ptrs a valid permutation.
func siftDownElement[E any](cmp Comparator[E], tb TieBreaker, ptrs []*peekSlot[E], p int) {
	n := len(ptrs)
	h := newHole(ptrs, p)
	defer h.close()

	pos := p
	for {
		left := pos * 2
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && less(cmp, tb, h.get(right), h.get(left)) {
			child = right
		}
		if !less(cmp, tb, h.get(child), h.lifted()) {
			break
		}
		h.moveTo(child)
		pos = child
	}
}

// siftUpElement restores the sub-heap invariant for a node at p,
// 1 <= p < len(ptrs), that may be smaller than its parent. This has no
// direct counterpart in the original algorithm description (whose
// sub-heap is only ever built via heapify), but is required to merge a
// freshly inserted slot into the ordering structure in amortized
// O(log n), as AddIter requires.
func siftUpElement[E any](cmp Comparator[E], tb TieBreaker, ptrs []*peekSlot[E], p int) {
	h := newHole(ptrs, p)
	defer h.close()

	pos := p
	for pos > 1 {
		parent := pos / 2
		if !less(cmp, tb, h.lifted(), h.get(parent)) {
			break
		}
		h.moveTo(parent)
		pos = parent
	}
}

// insertNewSlot merges the slot the caller has just appended to ptrs
// (ptrs[len(ptrs)-1]) into the two-tier invariant in amortized O(log n).
func insertNewSlot[E any](cmp Comparator[E], tb TieBreaker, ptrs []*peekSlot[E]) {
	n := len(ptrs)
	switch {
	case n == 1:
		return
	case n == 2:
		if less(cmp, tb, ptrs[1], ptrs[0]) {
			ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
		}
		return
	default:
		siftUpElement(cmp, tb, ptrs, n-1)
		if less(cmp, tb, ptrs[1], ptrs[0]) {
			ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
			siftDownElement(cmp, tb, ptrs, 1)
		}
	}
}

// popFrontItem removes and returns the current minimum head, advancing
// that slot's iterator. It reports whether an element was available.
// ptrsPtr is mutated to reflect the new length when a slot is exhausted.
func popFrontItem[E any](cmp Comparator[E], tb TieBreaker, ptrsPtr *[]*peekSlot[E]) (E, bool) {
	ptrs := *ptrsPtr
	n := len(ptrs)
	var zero E
	switch {
	case n == 0:
		return zero, false
	case n == 1:
		s := ptrs[0]
		old := s.head
		if s.advance() {
			return old, true
		}
		*ptrsPtr = ptrs[:0]
		return old, true
	case n == 2:
		s := ptrs[0]
		old := s.head
		if s.advance() {
			if less(cmp, tb, ptrs[1], ptrs[0]) {
				ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
			}
			return old, true
		}
		ptrs[0] = ptrs[1]
		*ptrsPtr = ptrs[:1]
		return old, true
	default:
		s := ptrs[0]
		old := s.head
		if s.advance() {
			if less(cmp, tb, ptrs[1], ptrs[0]) {
				ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
				siftDownElement(cmp, tb, ptrs, 1)
			}
			return old, true
		}
		last := ptrs[n-1]
		root := ptrs[1]
		ptrs[1] = last
		ptrs[0] = root
		ptrs = ptrs[:n-1]
		*ptrsPtr = ptrs
		siftDownElement(cmp, tb, ptrs, 1)
		return old, true
	}
}

// popFrontIter removes the entire minimum PeekSlot (head and remaining
// iterator) without advancing it, rebalancing exactly as popFrontItem's
// exhaustion branches do.
func popFrontIter[E any](cmp Comparator[E], tb TieBreaker, ptrsPtr *[]*peekSlot[E]) (*peekSlot[E], bool) {
	ptrs := *ptrsPtr
	n := len(ptrs)
	switch {
	case n == 0:
		return nil, false
	case n == 1:
		s := ptrs[0]
		*ptrsPtr = ptrs[:0]
		return s, true
	case n == 2:
		s := ptrs[0]
		ptrs[0] = ptrs[1]
		*ptrsPtr = ptrs[:1]
		return s, true
	default:
		s := ptrs[0]
		last := ptrs[n-1]
		root := ptrs[1]
		ptrs[1] = last
		ptrs[0] = root
		ptrs = ptrs[:n-1]
		*ptrsPtr = ptrs
		if len(ptrs) >= 2 {
			siftDownElement(cmp, tb, ptrs, 1)
		}
		return s, true
	}
}

// drainAll emits every remaining head, in ascending order, into a
// freshly allocated slice sized by lowerHint, consuming ptrs entirely.
// It specializes the steady state where one input dominates for long
// runs: while three or more iterators remain, the smaller of the two
// tracked heads is advanced and only triggers heap maintenance once it
// falls behind the runner-up; once exactly two iterators remain, the
// loop degenerates to a plain pairwise merge; once exactly one remains,
// its tail is appended in bulk.
func drainAll[E any](cmp Comparator[E], tb TieBreaker, ptrsPtr *[]*peekSlot[E], lowerHint int) []E {
	out := make([]E, 0, lowerHint)
	ptrs := *ptrsPtr

	for len(ptrs) >= 3 {
		out = append(out, ptrs[0].head)
		if ptrs[0].advance() {
			if less(cmp, tb, ptrs[1], ptrs[0]) {
				ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
				siftDownElement(cmp, tb, ptrs, 1)
			}
			continue
		}
		n := len(ptrs)
		last := ptrs[n-1]
		root := ptrs[1]
		ptrs[1] = last
		ptrs[0] = root
		ptrs = ptrs[:n-1]
		if len(ptrs) >= 2 {
			siftDownElement(cmp, tb, ptrs, 1)
		}
	}

	for len(ptrs) == 2 {
		out = append(out, ptrs[0].head)
		if ptrs[0].advance() {
			if less(cmp, tb, ptrs[1], ptrs[0]) {
				ptrs[0], ptrs[1] = ptrs[1], ptrs[0]
			}
			continue
		}
		ptrs[0] = ptrs[1]
		ptrs = ptrs[:1]
	}

	if len(ptrs) == 1 {
		out = append(out, ptrs[0].head)
		for ptrs[0].advance() {
			out = append(out, ptrs[0].head)
		}
		ptrs = ptrs[:0]
	}

	*ptrsPtr = ptrs
	return out
}
