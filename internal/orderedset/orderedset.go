// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

// Package orderedset provides a small insertion-ordered set used to back the
// per-node parent/child relations of a poset. Membership is O(1) via an
// index map; iteration, snapshotting and removal preserve the order in which
// elements were added (an element removed and added again goes to the end).
package orderedset

import "iter"

// Set is an insertion-ordered collection of distinct, comparable elements.
// The zero value is not usable; construct one with [New].
type Set[E comparable] struct {
	order []E
	index map[E]int
}

// New returns an empty Set.
func New[E comparable]() *Set[E] {
	return &Set[E]{index: make(map[E]int)}
}

// Add inserts e if absent and reports whether it was added.
func (s *Set[E]) Add(e E) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.order)
	s.order = append(s.order, e)
	return true
}

// Remove deletes e if present and reports whether it was removed. Removal is
// O(n) in the set size: the tail of the order slice shifts down by one and
// every shifted element's index is updated so subsequent lookups stay
// correct. Node degree in a Hasse diagram is expected to be small, so this
// is cheaper in practice than it looks.
func (s *Set[E]) Remove(e E) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	delete(s.index, e)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

// IndexOf returns the position at which e was inserted, or -1 if e is not a
// member. Positions shift down when earlier elements are removed, exactly
// like Slice()'s indices.
func (s *Set[E]) IndexOf(e E) int {
	if i, ok := s.index[e]; ok {
		return i
	}
	return -1
}

// Contains reports whether e is a member of the set.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.index[e]
	return ok
}

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int {
	return len(s.order)
}

// Slice returns a copy of the set's elements in insertion order. Mutating
// the returned slice does not affect the set.
func (s *Set[E]) Slice() []E {
	out := make([]E, len(s.order))
	copy(out, s.order)
	return out
}

// All returns a range iterator over the set's elements in insertion order.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.order {
			if !yield(e) {
				return
			}
		}
	}
}
