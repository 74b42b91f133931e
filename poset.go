// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import "github.com/tigerwill90/poset/internal/orderedset"

// Poset is a dynamic partially-ordered set. See the package doc for the
// overall contract and the maintained invariants. The zero value is not
// usable; construct one with [New].
type Poset[E comparable] struct {
	leq        LeqFunc[E]
	parentHint CandidateFunc[E]
	childHint  CandidateFunc[E]

	nodes map[E]*node[E]
	// order records current members in insertion order. Every query that
	// must be deterministic walks this slice rather than ranging over the
	// nodes map.
	order *orderedset.Set[E]
}

// New constructs a [Poset] ordered by leq. leq must be reflexive,
// antisymmetric and transitive; the engine trusts this and does not verify
// it beyond what [Poset.IsValid] happens to catch.
//
// By default the poset starts empty and locates immediate parents/children
// by scanning the full current member set. Pass [WithInitial] to seed
// members, and [WithParentHint]/[WithChildHint] to accelerate the search
// with a caller-supplied candidate generator.
func New[E comparable](leq LeqFunc[E], opts ...Option[E]) *Poset[E] {
	var c config[E]
	for _, opt := range opts {
		opt(&c)
	}

	p := &Poset[E]{
		leq:        leq,
		parentHint: c.parentHint,
		childHint:  c.childHint,
		nodes:      make(map[E]*node[E]),
		order:      orderedset.New[E](),
	}

	for _, e := range c.initial {
		p.Add(e)
	}

	return p
}

// Contains reports whether e is a current member of the poset.
func (p *Poset[E]) Contains(e E) bool {
	_, ok := p.nodes[e]
	return ok
}

// Size returns the number of members, excluding the implicit TOP/BOTTOM
// sentinels.
func (p *Poset[E]) Size() int {
	return p.order.Len()
}

// Clear removes every member. The poset is left as if newly constructed
// with no initial elements (the sentinels, being implicit, need no reset).
func (p *Poset[E]) Clear() {
	p.nodes = make(map[E]*node[E])
	p.order = orderedset.New[E]()
}

func (p *Poset[E]) addEdge(parent, child E) {
	p.nodes[parent].children.Add(child)
	p.nodes[child].parents.Add(parent)
}

func (p *Poset[E]) removeEdge(parent, child E) {
	p.nodes[parent].children.Remove(child)
	p.nodes[child].parents.Remove(parent)
}

func (p *Poset[E]) hasEdge(parent, child E) bool {
	return p.nodes[parent].children.Contains(child)
}
