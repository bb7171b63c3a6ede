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
	"slices"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	m := NewBuilder(FromSlice([]int{1, 3}), FromSlice([]int{2})).Build()
	got := collect(m)
	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBuilderWithInlineStorage(t *testing.T) {
	b := NewBuilder(FromSlice([]int{1}), FromSlice([]int{2}))
	b.WithStorage(NewInlineStorage[int](2))
	m := b.Build()
	got := collect(m)
	want := []int{1, 2}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBuilderArbitraryTieBreaking(t *testing.T) {
	b := NewBuilder(FromSlice([]int{1}), FromSlice([]int{1}))
	b.ArbitraryTieBreaking()
	if b.TieBreak != Unspecified {
		t.Fatalf("expected Unspecified, got %v", b.TieBreak)
	}
	got := collect(b.Build())
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %v", got)
	}
}

func TestBuilderMaxBy(t *testing.T) {
	b := NewBuilder(FromSlice([]int{5, 1}), FromSlice([]int{6, 2}))
	b.MaxBy(ByOrd[int]())
	got := collect(b.Build())
	want := []int{6, 5, 2, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBuilderMinByFuncAndMaxByFunc(t *testing.T) {
	asc := NewBuilder(FromSlice([]int{1, 3}), FromSlice([]int{7, 9}))
	asc.MinByFunc(func(a, b int) int { return a - b })
	got := collect(asc.Build())
	want := []int{1, 3, 7, 9}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	desc := NewBuilder(FromSlice([]int{7, 3}), FromSlice([]int{9, 1}))
	desc.MaxByFunc(func(a, b int) int { return a - b })
	got = collect(desc.Build())
	want = []int{9, 7, 3, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBuilderWithTieBreak(t *testing.T) {
	b := NewBuilder(FromSlice([]int{1}), FromSlice([]int{1}))
	b.WithTieBreak(ReverseInsertionOrder)
	if b.TieBreak != ReverseInsertionOrder {
		t.Fatalf("expected ReverseInsertionOrder, got %v", b.TieBreak)
	}
}

func TestMinByKey(t *testing.T) {
	type rec struct{ n int }
	b := NewBuilderFunc[rec](nil, FromSlice([]rec{{1}, {3}}), FromSlice([]rec{{2}}))
	MinByKey(b, func(r rec) int { return r.n })
	got := collect(b.Build())
	if len(got) != 3 || got[0].n != 1 || got[1].n != 2 || got[2].n != 3 {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestMaxByKey(t *testing.T) {
	type rec struct{ n int }
	b := NewBuilderFunc[rec](nil, FromSlice([]rec{{3}, {1}}), FromSlice([]rec{{2}}))
	MaxByKey(b, func(r rec) int { return r.n })
	got := collect(b.Build())
	if len(got) != 3 || got[0].n != 3 || got[1].n != 2 || got[2].n != 1 {
		t.Fatalf("unexpected order: %v", got)
	}
}
