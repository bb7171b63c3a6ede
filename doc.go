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

// Package kmerge merges any number of already-sorted iterators into a single
// sorted iterator.
//
// The engine keeps one eagerly-peeked head element per live input arranged
// in a two-tier binary min-heap over pointers to those elements, so the
// smallest head across all inputs is always available in O(1) and advancing
// past it costs O(log n). Inputs are never required to be of the same
// concrete type, only to share an element type and a comparator.
package kmerge
