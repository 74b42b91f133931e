// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import "slices"

// Add inserts e. If e is already a member, Add leaves the poset unchanged
// and returns false. Otherwise it locates e's immediate parents and
// children among current members, splices e between them, and returns
// true. Because sentinels are implicit here (see node.go), attaching to
// TOP/BOTTOM when there is no real parent/child needs no code: a member
// with no real parent simply has an empty parents set, which already
// means "attached to TOP."
func (p *Poset[E]) Add(e E) bool {
	if p.Contains(e) {
		return false
	}

	parents := p.candidateImmediateParents(e)
	children := p.candidateImmediateChildren(e)

	for _, par := range parents {
		for _, ch := range children {
			if p.hasEdge(par, ch) {
				p.removeEdge(par, ch)
			}
		}
	}

	p.nodes[e] = newNode[E]()
	p.order.Add(e)

	for _, par := range parents {
		p.addEdge(par, e)
	}
	for _, ch := range children {
		p.addEdge(e, ch)
	}

	return true
}

// candidateImmediateParents returns the current members that are immediate
// parents of e, i.e. the minimal elements (under leq) of {m member | leq(e,
// m) && e != m}. Results are in global member insertion order, making the
// result independent of whether a hint was used.
func (p *Poset[E]) candidateImmediateParents(e E) []E {
	return p.immediateCoverSet(e, p.parentHint, func(lo, hi E) bool { return p.leq(lo, hi) })
}

// candidateImmediateChildren is the mirror of candidateImmediateParents:
// the maximal elements of {m member | leq(m, e) && e != m}.
func (p *Poset[E]) candidateImmediateChildren(e E) []E {
	return p.immediateCoverSet(e, p.childHint, func(lo, hi E) bool { return p.leq(hi, lo) })
}

// immediateCoverSet implements the shared shape of an immediate-cover
// search: gather candidates (via hint or full scan), keep those comparable to e in
// the requested direction, then discard any candidate dominated by another
// survivor so only the tight cover remains.
//
// covers(lo, hi) must report whether lo is "below or equal" hi in the
// direction being searched: for parents that's leq(e, candidate); for
// children it's leq(candidate, e). Passing it in lets one implementation
// serve both searches instead of duplicating the filter/minimality logic.
func (p *Poset[E]) immediateCoverSet(e E, hint CandidateFunc[E], covers func(lo, hi E) bool) []E {
	candidates := p.candidates(e, hint)

	survivors := make([]E, 0, len(candidates))
	for _, c := range candidates {
		if c != e && covers(e, c) {
			survivors = append(survivors, c)
		}
	}

	result := make([]E, 0, len(survivors))
	for _, c := range survivors {
		dominated := false
		for _, other := range survivors {
			if other != c && covers(other, c) {
				dominated = true
				break
			}
		}
		if !dominated {
			result = append(result, c)
		}
	}

	slices.SortFunc(result, func(a, b E) int { return p.order.IndexOf(a) - p.order.IndexOf(b) })
	return result
}

// candidates returns the search frontier for e: every current member when
// no hint is registered, or the set of members reachable by repeatedly
// applying hint starting from e, climbing through non-members along the
// way. The hint's contract only guarantees the true immediate relation is
// reachable this way, not that every yielded element already is a member.
func (p *Poset[E]) candidates(e E, hint CandidateFunc[E]) []E {
	if hint == nil {
		return p.order.Slice()
	}

	seen := make(map[E]bool)
	var out []E
	var visit func(x E)
	visit = func(x E) {
		for y := range hint(x) {
			if seen[y] {
				continue
			}
			seen[y] = true
			if p.Contains(y) {
				out = append(out, y)
			} else {
				visit(y)
			}
		}
	}
	visit(e)
	return out
}
