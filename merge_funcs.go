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

import "golang.org/x/exp/constraints"

// Merge merges already-sorted iters into ascending order using E's
// natural order and stable (insertion-order) tie-breaking. It is
// shorthand for NewBuilder(iters...).Build().
func Merge[E constraints.Ordered](iters ...Iterator[E]) *MergeIter[E] {
	return NewBuilder(iters...).Build()
}

// MergeMax merges already-sorted (descending) iters into descending
// order using E's natural order.
func MergeMax[E constraints.Ordered](iters ...Iterator[E]) *MergeIter[E] {
	b := NewBuilder(iters...)
	b.Cmp = MaxFirst(ByOrd[E]())
	return b.Build()
}

// MergeBy merges already-sorted iters using cmp as the ordering.
func MergeBy[E any](cmp func(a, b E) int, iters ...Iterator[E]) *MergeIter[E] {
	return NewBuilderFunc(ByFunc(cmp), iters...).Build()
}

// MergeByKey merges already-sorted iters, ordering by the ascending
// natural order of key(element).
func MergeByKey[E any, K constraints.Ordered](key func(E) K, iters ...Iterator[E]) *MergeIter[E] {
	return NewBuilderFunc(ByKey(key), iters...).Build()
}
