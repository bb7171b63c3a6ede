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

// Comparator orders elements of type E. Compare returns a negative number
// if a sorts before b, zero if they are equivalent for ordering purposes,
// and a positive number if a sorts after b.
type Comparator[E any] interface {
	Compare(a, b E) int
}

type compareFunc[E any] func(a, b E) int

func (f compareFunc[E]) Compare(a, b E) int { return f(a, b) }

// ByFunc builds a Comparator from a plain comparison function.
func ByFunc[E any](cmp func(a, b E) int) Comparator[E] {
	return compareFunc[E](cmp)
}

// ByOrd builds a Comparator using E's natural order. This is the default
// comparator used by Builder and by Merge.
func ByOrd[E constraints.Ordered]() Comparator[E] {
	return compareFunc[E](func(a, b E) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// ByKey builds a Comparator that orders elements by comparing a derived
// key's natural order, rather than the elements themselves.
func ByKey[E any, K constraints.Ordered](key func(E) K) Comparator[E] {
	return compareFunc[E](func(a, b E) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// MaxFirst wraps cmp so that the largest element (according to cmp) is
// treated as the smallest, turning a min-merge into a max-merge.
func MaxFirst[E any](cmp Comparator[E]) Comparator[E] {
	return compareFunc[E](func(a, b E) int { return cmp.Compare(b, a) })
}

// Chain returns a Comparator that tries each cmp in order, returning the
// first non-zero result, or zero if every comparator reports the elements
// equivalent.
func Chain[E any](cmps ...Comparator[E]) Comparator[E] {
	return compareFunc[E](func(a, b E) int {
		for _, c := range cmps {
			if r := c.Compare(a, b); r != 0 {
				return r
			}
		}
		return 0
	})
}
