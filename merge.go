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

import (
	"io"
	"iter"
)

// MergeIter merges any number of already-sorted Iterator[E] values into a
// single sorted sequence. The zero value is not usable; construct one with
// Build, Merge, MergeMax, MergeBy, MergeByKey, or Builder.Build.
//
// A MergeIter is fused: once it reports exhaustion, every later call
// continues to report exhaustion.
type MergeIter[E any] struct {
	storage Storage[E]
	ptrs    []*peekSlot[E]
	cmp     Comparator[E]
	tb      TieBreaker
	nextSeq uint64
}

// Build constructs a MergeIter over storage's already-populated slots,
// using cmp as the primary ordering and tb to break ties. storage must
// contain only non-empty slots; Storage's Add/TryAdd methods already
// filter these out.
func Build[E any](storage Storage[E], cmp Comparator[E], tb TieBreaker) *MergeIter[E] {
	slots := storage.slotsInOrder()
	ptrs := make([]*peekSlot[E], len(slots))
	copy(ptrs, slots)
	heapify(cmp, tb, ptrs)
	return &MergeIter[E]{
		storage: storage,
		ptrs:    ptrs,
		cmp:     cmp,
		tb:      tb,
		nextSeq: uint64(len(slots)),
	}
}

// Next returns the smallest remaining head and advances its input,
// or reports false once every input is exhausted.
func (m *MergeIter[E]) Next() (E, bool) {
	return popFrontItem(m.cmp, m.tb, &m.ptrs)
}

// Peek returns the smallest remaining head without advancing anything.
func (m *MergeIter[E]) Peek() (E, bool) {
	if len(m.ptrs) == 0 {
		var zero E
		return zero, false
	}
	return m.ptrs[0].head, true
}

// NextIf returns and consumes the smallest remaining head only if pred
// reports true for it; otherwise nothing is consumed.
func (m *MergeIter[E]) NextIf(pred func(E) bool) (E, bool) {
	v, ok := m.Peek()
	if !ok || !pred(v) {
		var zero E
		return zero, false
	}
	return m.Next()
}

// NextIfEq returns and consumes the smallest remaining head only if it
// equals target. It is a free function, not a method, because Go methods
// cannot introduce the comparable constraint E needs here without already
// requiring it on MergeIter itself.
func NextIfEq[E comparable](m *MergeIter[E], target E) (E, bool) {
	return m.NextIf(func(v E) bool { return v == target })
}

// SizeHint reports the aggregate lower and (if known) upper bound on the
// number of elements remaining, combining the live slot count with every
// remaining input's own SizeHint.
func (m *MergeIter[E]) SizeHint() SizeHint {
	total := SizeHint{Lower: len(m.ptrs), Upper: len(m.ptrs), HasUpper: true}
	for _, s := range m.ptrs {
		lo, hi, ok := s.iter.SizeHint()
		total = addSizeHint(total, lo, hi, ok)
	}
	return total
}

// Count fully drains the engine and reports how many elements it produced
// in total (1 per already-peeked head, plus each live input's remaining
// count). Count does not promise an overflow-checked result: like the
// original library's release-mode behavior, the sum wraps silently on
// overflow rather than panicking.
func (m *MergeIter[E]) Count() int {
	n := 0
	for _, ok := m.Next(); ok; _, ok = m.Next() {
		n++
	}
	return n
}

// IntoSlice drains the engine completely into a freshly allocated slice.
func (m *MergeIter[E]) IntoSlice() []E {
	lower := m.SizeHint().Lower
	return drainAll(m.cmp, m.tb, &m.ptrs, lower)
}

// AsUnorderedIters drains every remaining slot's (head, iterator) pair in
// whatever order the heap's pointer array happens to hold them, with no
// ordering guarantee. It is cheaper than AsIters because it performs no
// further heap maintenance.
func (m *MergeIter[E]) AsUnorderedIters() iter.Seq2[E, Iterator[E]] {
	return func(yield func(E, Iterator[E]) bool) {
		for len(m.ptrs) > 0 {
			n := len(m.ptrs)
			s := m.ptrs[n-1]
			m.ptrs = m.ptrs[:n-1]
			if !yield(s.head, s.iter) {
				return
			}
		}
	}
}

// AsIters drains every remaining slot's (head, iterator) pair in
// ascending head order via repeated popFrontIter.
func (m *MergeIter[E]) AsIters() iter.Seq2[E, Iterator[E]] {
	return func(yield func(E, Iterator[E]) bool) {
		for {
			s, ok := popFrontIter(m.cmp, m.tb, &m.ptrs)
			if !ok {
				return
			}
			if !yield(s.head, s.iter) {
				return
			}
		}
	}
}

// BreakUp surrenders the engine's remaining slots as a fresh
// DynamicStorage, without visiting or reordering them. The MergeIter
// itself becomes empty; the caller is expected to Build a new MergeIter
// from the returned storage (typically after ReplaceCmp-style
// reconfiguration), or to drive it directly via AsIters-style iteration
// to reclaim each iterator.
func (m *MergeIter[E]) BreakUp() *DynamicStorage[E] {
	out := &DynamicStorage[E]{slots: m.ptrs}
	m.ptrs = nil
	return out
}

// AddIter inserts a single fresh input. An input that is already
// exhausted becomes a no-op. The new slot is merged into the ordering
// structure in amortized O(log n).
func (m *MergeIter[E]) AddIter(it Iterator[E]) {
	s, ok := newPeekSlot(it, m.nextSeq)
	if !ok {
		return
	}
	m.nextSeq++
	m.ptrs = append(m.ptrs, s)
	insertNewSlot(m.cmp, m.tb, m.ptrs)
}

// AddIters inserts every input in its, reserving capacity once up front.
func (m *MergeIter[E]) AddIters(its []Iterator[E]) {
	if cap(m.ptrs)-len(m.ptrs) < len(its) {
		grown := make([]*peekSlot[E], len(m.ptrs), len(m.ptrs)+len(its))
		copy(grown, m.ptrs)
		m.ptrs = grown
	}
	for _, it := range its {
		s, ok := newPeekSlot(it, m.nextSeq)
		if !ok {
			continue
		}
		m.nextSeq++
		m.ptrs = append(m.ptrs, s)
	}
	heapify(m.cmp, m.tb, m.ptrs)
}

// ReplaceCmp moves every remaining slot into a new engine ordered by cmp,
// re-heapifying in one pass. The tie-breaker is preserved.
func (m *MergeIter[E]) ReplaceCmp(cmp Comparator[E]) *MergeIter[E] {
	ptrs := m.ptrs
	m.ptrs = nil
	heapify(cmp, m.tb, ptrs)
	return &MergeIter[E]{
		storage: m.storage,
		ptrs:    ptrs,
		cmp:     cmp,
		tb:      m.tb,
		nextSeq: m.nextSeq,
	}
}

// Close closes every remaining input that implements io.Closer, in
// ptrs order, and then marks the engine empty. If more than one Close
// call panics, the first panic value is kept and re-raised after every
// remaining input has had a chance to close; later panics are discarded,
// since Go has no abort-on-double-panic rule to match against.
func (m *MergeIter[E]) Close() error {
	ptrs := m.ptrs
	m.ptrs = nil

	var firstErr error
	var firstPanic any
	havePanic := false

	for _, s := range ptrs {
		c, ok := s.iter.(io.Closer)
		if !ok {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil && !havePanic {
					havePanic = true
					firstPanic = r
				}
			}()
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}()
	}

	if havePanic {
		panic(firstPanic)
	}
	return firstErr
}
