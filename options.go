// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import "iter"

// LeqFunc defines the partial-order predicate a [Poset] is built over.
// leq(a, b) must report whether a is less than or equal to b. It is
// expected to be reflexive, antisymmetric and transitive; violating this
// contract is undefined behavior for the engine.
type LeqFunc[E comparable] func(a, b E) bool

// CandidateFunc is an acceleration hint: given an element, it yields
// candidate immediate parents (or children, depending on which hint it is
// registered as) in the conceptual universe, members or not. The engine
// repeatedly applies the hint and filters to current members, so a hint may
// safely enumerate a superset of the true immediate relation. See
// [WithParentHint] and [WithChildHint].
type CandidateFunc[E comparable] func(e E) iter.Seq[E]

// config accumulates what New needs before a Poset exists: a single
// mutable target that every Option closes over.
type config[E comparable] struct {
	initial    []E
	parentHint CandidateFunc[E]
	childHint  CandidateFunc[E]
}

// Option configures a [Poset] at construction time.
type Option[E comparable] func(*config[E])

// WithInitial seeds the poset with elems, inserted via [Poset.Add] in the
// given order, exactly as if Add had been called once per element after
// construction.
func WithInitial[E comparable](elems ...E) Option[E] {
	return func(c *config[E]) {
		c.initial = append(c.initial, elems...)
	}
}

// WithInitialSeq is the [iter.Seq] form of [WithInitial].
func WithInitialSeq[E comparable](seq iter.Seq[E]) Option[E] {
	return func(c *config[E]) {
		for e := range seq {
			c.initial = append(c.initial, e)
		}
	}
}

// WithParentHint registers a candidate-immediate-parent generator used to
// accelerate [Poset.Add] and [Poset.HypotheticalParents]. Without it, the
// engine falls back to scanning every current member.
func WithParentHint[E comparable](fn CandidateFunc[E]) Option[E] {
	return func(c *config[E]) {
		c.parentHint = fn
	}
}

// WithChildHint is the child-side counterpart of [WithParentHint].
func WithChildHint[E comparable](fn CandidateFunc[E]) Option[E] {
	return func(c *config[E]) {
		c.childHint = fn
	}
}
