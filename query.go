// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import "iter"

// Parents returns x's immediate parents among current members, with the
// TOP sentinel filtered out by construction (an empty result already means
// "attached to TOP"). ok is false when x is not a member — distinguishing
// "no parents" from "not present" the way a map's comma-ok form does.
func (p *Poset[E]) Parents(x E) (parents []E, ok bool) {
	n, ok := p.nodes[x]
	if !ok {
		return nil, false
	}
	return n.parents.Slice(), true
}

// Children is the child-side counterpart of Parents.
func (p *Poset[E]) Children(x E) (children []E, ok bool) {
	n, ok := p.nodes[x]
	if !ok {
		return nil, false
	}
	return n.children.Slice(), true
}

// HypotheticalParents returns x's immediate parents. When x is a member
// this is identical to Parents. When x is not a member, it returns the
// covering members x would gain if it were inserted via Add, without
// mutating the poset. Unlike Parents, this never signals absence.
func (p *Poset[E]) HypotheticalParents(x E) []E {
	if parents, ok := p.Parents(x); ok {
		return parents
	}
	return p.candidateImmediateParents(x)
}

// HypotheticalChildren is the child-side counterpart of HypotheticalParents.
func (p *Poset[E]) HypotheticalChildren(x E) []E {
	if children, ok := p.Children(x); ok {
		return children
	}
	return p.candidateImmediateChildren(x)
}

// Ancestors returns every member y != x with leq(x, y): the members x is
// less than or equal to. Valid whether or not x is itself a member. This is
// a direct application of the ordering predicate rather than a graph walk;
// result order is unspecified.
func (p *Poset[E]) Ancestors(x E) []E {
	var out []E
	for _, m := range p.order.Slice() {
		if m != x && p.leq(x, m) {
			out = append(out, m)
		}
	}
	return out
}

// Descendants is the symmetric counterpart of Ancestors: every member y !=
// x with leq(y, x).
func (p *Poset[E]) Descendants(x E) []E {
	var out []E
	for _, m := range p.order.Slice() {
		if m != x && p.leq(m, x) {
			out = append(out, m)
		}
	}
	return out
}

// MaximalElements returns the members with no member parent, i.e. whose
// only parent is the implicit TOP sentinel. The result is in member
// insertion order.
func (p *Poset[E]) MaximalElements() []E {
	var out []E
	for _, m := range p.order.Slice() {
		if p.nodes[m].parents.Len() == 0 {
			out = append(out, m)
		}
	}
	return out
}

// MinimalElements returns the members with no member child, i.e. whose only
// child is the implicit BOTTOM sentinel. The result is in member insertion
// order.
func (p *Poset[E]) MinimalElements() []E {
	var out []E
	for _, m := range p.order.Slice() {
		if p.nodes[m].children.Len() == 0 {
			out = append(out, m)
		}
	}
	return out
}

// All returns a range iterator over current members, in insertion order.
func (p *Poset[E]) All() iter.Seq[E] {
	return p.order.All()
}
