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

// Storage holds the slots array backing a MergeIter in insertion order.
// The interface is sealed: the unexported sealed method means only
// DynamicStorage and InlineStorage, defined in this package, can satisfy
// it.
type Storage[E any] interface {
	Len() int
	slotsInOrder() []*peekSlot[E]
	sealed()
}

// DynamicStorage is a Storage backend that grows without bound, backed by
// a plain Go slice. This is the default storage used by Merge and Builder
// when no fixed capacity is required.
type DynamicStorage[E any] struct {
	slots []*peekSlot[E]
}

// NewDynamicStorage returns an empty, growable Storage.
func NewDynamicStorage[E any]() *DynamicStorage[E] {
	return &DynamicStorage[E]{}
}

func (d *DynamicStorage[E]) Len() int { return len(d.slots) }

// Add pulls the first element from it and, if it was non-empty, appends a
// new slot for it in insertion order. It reports whether a slot was added.
func (d *DynamicStorage[E]) Add(it Iterator[E]) bool {
	s, ok := newPeekSlot(it, uint64(len(d.slots)))
	if !ok {
		return false
	}
	d.slots = append(d.slots, s)
	return true
}

// AddAll calls Add for each of its, reserving capacity for len(its) extra
// slots up front.
func (d *DynamicStorage[E]) AddAll(its []Iterator[E]) {
	if cap(d.slots)-len(d.slots) < len(its) {
		grown := make([]*peekSlot[E], len(d.slots), len(d.slots)+len(its))
		copy(grown, d.slots)
		d.slots = grown
	}
	for _, it := range its {
		d.Add(it)
	}
}

func (d *DynamicStorage[E]) slotsInOrder() []*peekSlot[E] { return d.slots }

func (d *DynamicStorage[E]) sealed() {}

// InlineStorage is a Storage backend preallocated once to a fixed capacity
// and never grown past it. It is the Go analogue of the original library's
// stack-inline array storage: since Go has no const generics, the fixed
// size is a runtime value set at construction instead of a type parameter,
// but the never-grows-past-capacity behavior is identical.
type InlineStorage[E any] struct {
	slots []*peekSlot[E]
	cap   int
}

// NewInlineStorage returns an empty Storage that can hold at most capacity
// slots.
func NewInlineStorage[E any](capacity int) *InlineStorage[E] {
	return &InlineStorage[E]{slots: make([]*peekSlot[E], 0, capacity), cap: capacity}
}

func (in *InlineStorage[E]) Len() int { return len(in.slots) }

// Cap reports the fixed capacity this storage was constructed with.
func (in *InlineStorage[E]) Cap() int { return in.cap }

func (in *InlineStorage[E]) tryPush(s *peekSlot[E]) error {
	if len(in.slots) >= in.cap {
		return ErrCapacityOverflow
	}
	in.slots = append(in.slots, s)
	return nil
}

// TryAdd pulls the first element from it and, if it was non-empty, tries to
// append a new slot for it. It returns ErrCapacityOverflow without
// consuming it further if the storage is already full.
func (in *InlineStorage[E]) TryAdd(it Iterator[E]) (bool, error) {
	s, ok := newPeekSlot(it, uint64(len(in.slots)))
	if !ok {
		return false, nil
	}
	if err := in.tryPush(s); err != nil {
		return false, err
	}
	return true, nil
}

// Add is TryAdd, but panics with ErrCapacityOverflow instead of returning
// an error.
func (in *InlineStorage[E]) Add(it Iterator[E]) bool {
	added, err := in.TryAdd(it)
	if err != nil {
		panic(err)
	}
	return added
}

func (in *InlineStorage[E]) slotsInOrder() []*peekSlot[E] { return in.slots }

func (in *InlineStorage[E]) sealed() {}
