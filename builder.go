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

// Builder configures and creates a MergeIter. It follows this codebase's
// usual configuration idiom of a plain struct with exported fields and
// chain-style setters, rather than functional options.
//
// The zero value is not directly usable; construct one with NewBuilder so
// that Cmp and TieBreak receive their defaults.
type Builder[E any] struct {
	// Storage backs the MergeIter this Builder produces. If nil, Build
	// uses a fresh DynamicStorage.
	Storage Storage[E]
	// Cmp orders elements. Defaults to ByOrd[E]() for NewBuilder.
	Cmp Comparator[E]
	// TieBreak resolves elements that compare equal under Cmp. Defaults
	// to InsertionOrder.
	TieBreak TieBreaker

	iters []Iterator[E]
}

// NewBuilder returns a Builder seeded with iters, stable (insertion-order)
// tie-breaking, and natural ordering.
func NewBuilder[E constraints.Ordered](iters ...Iterator[E]) *Builder[E] {
	return &Builder[E]{
		Cmp:      ByOrd[E](),
		TieBreak: InsertionOrder,
		iters:    iters,
	}
}

// NewBuilderFunc returns a Builder seeded with iters and cmp as its
// comparator, for element types with no natural order.
func NewBuilderFunc[E any](cmp Comparator[E], iters ...Iterator[E]) *Builder[E] {
	return &Builder[E]{
		Cmp:      cmp,
		TieBreak: InsertionOrder,
		iters:    iters,
	}
}

// WithStorage sets the storage backend the built MergeIter will use.
func (b *Builder[E]) WithStorage(s Storage[E]) *Builder[E] {
	b.Storage = s
	return b
}

// WithCmp replaces the comparator.
func (b *Builder[E]) WithCmp(cmp Comparator[E]) *Builder[E] {
	b.Cmp = cmp
	return b
}

// MinBy sets cmp as the primary comparator with min-first polarity. This is
// the same as WithCmp; it exists so that the Builder's method names mirror
// spec.md's min-by/max-by option pair one-for-one.
func (b *Builder[E]) MinBy(cmp Comparator[E]) *Builder[E] {
	b.Cmp = cmp
	return b
}

// MaxBy sets cmp as the primary comparator wrapped by MaxFirst, so the
// largest element under cmp sorts first.
func (b *Builder[E]) MaxBy(cmp Comparator[E]) *Builder[E] {
	b.Cmp = MaxFirst(cmp)
	return b
}

// MinByFunc treats fn as a Comparator with min-first polarity.
func (b *Builder[E]) MinByFunc(fn func(a, b E) int) *Builder[E] {
	b.Cmp = ByFunc(fn)
	return b
}

// MaxByFunc treats fn as a Comparator wrapped by MaxFirst.
func (b *Builder[E]) MaxByFunc(fn func(a, b E) int) *Builder[E] {
	b.Cmp = MaxFirst(ByFunc(fn))
	return b
}

// ArbitraryTieBreaking disables stable tie-breaking, which is marginally
// cheaper since it never inspects insertion sequence numbers.
func (b *Builder[E]) ArbitraryTieBreaking() *Builder[E] {
	b.TieBreak = Unspecified
	return b
}

// StableTieBreaking restores the default, insertion-order tie-breaking.
// It exists for symmetry with ArbitraryTieBreaking.
func (b *Builder[E]) StableTieBreaking() *Builder[E] {
	b.TieBreak = InsertionOrder
	return b
}

// WithTieBreak replaces the tie-breaker directly. ArbitraryTieBreaking and
// StableTieBreaking are shorthand for the two most common choices.
func (b *Builder[E]) WithTieBreak(tb TieBreaker) *Builder[E] {
	b.TieBreak = tb
	return b
}

// Build assembles the configured Storage (or a fresh DynamicStorage, if
// none was set) from the Builder's iterators and constructs a MergeIter.
func (b *Builder[E]) Build() *MergeIter[E] {
	storage := b.Storage
	if storage == nil {
		d := NewDynamicStorage[E]()
		d.AddAll(b.iters)
		storage = d
	} else {
		switch s := storage.(type) {
		case *DynamicStorage[E]:
			s.AddAll(b.iters)
		case *InlineStorage[E]:
			for _, it := range b.iters {
				s.Add(it)
			}
		}
	}
	return Build(storage, b.Cmp, b.TieBreak)
}

// MinByKey configures b to order elements by the ascending natural order
// of key(element). It is a free function rather than a method because Go
// methods cannot introduce a new type parameter such as K.
func MinByKey[E any, K constraints.Ordered](b *Builder[E], key func(E) K) *Builder[E] {
	b.Cmp = ByKey(key)
	return b
}

// MaxByKey configures b to order elements by the descending natural order
// of key(element).
func MaxByKey[E any, K constraints.Ordered](b *Builder[E], key func(E) K) *Builder[E] {
	b.Cmp = MaxFirst(ByKey(key))
	return b
}
