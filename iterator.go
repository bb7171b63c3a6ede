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

import "iter"

// Iterator is a pull-based source of already-sorted elements. Next returns
// the next element and true, or the zero value and false once exhausted.
// A source that also implements io.Closer is closed by the MergeIter as
// soon as it reports exhaustion, or by MergeIter.Close if it is still live
// then. Iterators handed back by BreakUp, AsIters or AsUnorderedIters are
// no longer closed by the MergeIter.
type Iterator[E any] interface {
	Next() (E, bool)
	// SizeHint reports a lower bound and, if known, an upper bound on the
	// number of elements remaining. An unknown upper bound is reported as
	// hasUpper == false, in which case upper is meaningless.
	SizeHint() (lower int, upper int, hasUpper bool)
}

// SizeHint is the aggregate (lower, upper, hasUpper) bound reported by
// MergeIter.SizeHint. The lower bound uses saturating addition so it never
// under-reports; the upper bound is dropped (hasUpper becomes false) if any
// input lacks one, or if the combined total would overflow an int.
type SizeHint struct {
	Lower    int
	Upper    int
	HasUpper bool
}

func addSizeHint(total SizeHint, lower int, upper int, hasUpper bool) SizeHint {
	total.Lower = saturatingAddInt(total.Lower, lower)
	if !total.HasUpper {
		return total
	}
	if !hasUpper {
		total.HasUpper = false
		total.Upper = 0
		return total
	}
	sum, ok := checkedAddInt(total.Upper, upper)
	if !ok {
		total.HasUpper = false
		total.Upper = 0
		return total
	}
	total.Upper = sum
	return total
}

// sliceIterator adapts a slice into an Iterator[E].
type sliceIterator[E any] struct {
	s []E
}

// FromSlice returns an Iterator[E] that yields the elements of s in order.
// s is assumed to already be sorted according to whatever comparator the
// caller merges with.
func FromSlice[E any](s []E) Iterator[E] {
	return &sliceIterator[E]{s: s}
}

func (it *sliceIterator[E]) Next() (E, bool) {
	if len(it.s) == 0 {
		var zero E
		return zero, false
	}
	v := it.s[0]
	it.s = it.s[1:]
	return v, true
}

func (it *sliceIterator[E]) SizeHint() (int, int, bool) {
	return len(it.s), len(it.s), true
}

// funcIterator adapts a plain next function into an Iterator[E].
type funcIterator[E any] struct {
	next func() (E, bool)
}

// FromFunc returns an Iterator[E] backed by next. The returned Iterator
// reports no upper bound, since an arbitrary function carries no length
// information.
func FromFunc[E any](next func() (E, bool)) Iterator[E] {
	return &funcIterator[E]{next: next}
}

func (it *funcIterator[E]) Next() (E, bool) {
	return it.next()
}

func (it *funcIterator[E]) SizeHint() (int, int, bool) {
	return 0, 0, false
}

// seqIterator adapts a standard library iter.Seq[E] (a push-style range
// function) into this package's pull-style Iterator[E], using iter.Pull to
// drive the underlying range function from a background goroutine one step
// at a time. Close must be called once the caller is done with it, or the
// pull goroutine leaks; MergeIter.Close does this automatically for any
// slot whose iterator implements io.Closer.
type seqIterator[E any] struct {
	next func() (E, bool)
	stop func()
}

// FromSeq adapts a standard library iter.Seq[E] into an Iterator[E]. The
// returned Iterator implements io.Closer; callers that do not hand it to a
// MergeIter (which closes it automatically) must call Close themselves.
func FromSeq[E any](seq iter.Seq[E]) Iterator[E] {
	next, stop := iter.Pull(seq)
	return &seqIterator[E]{next: next, stop: stop}
}

func (it *seqIterator[E]) Next() (E, bool) {
	return it.next()
}

func (it *seqIterator[E]) SizeHint() (int, int, bool) {
	return 0, 0, false
}

func (it *seqIterator[E]) Close() error {
	it.stop()
	return nil
}
