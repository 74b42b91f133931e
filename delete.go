// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

// Remove deletes e. If e is not a member, Remove leaves the poset unchanged
// and returns false. Otherwise it detaches e from its parents and children,
// reinstates a direct p->c cover edge between each former parent/child pair
// whose only covering route ran through e, and returns true. As with Add,
// there is nothing to do for sentinel reattachment: a former child left
// with no remaining parent already has an empty parents set, which already
// means "attached to TOP."
func (p *Poset[E]) Remove(e E) bool {
	n, ok := p.nodes[e]
	if !ok {
		return false
	}

	parents := n.parents.Slice()
	children := n.children.Slice()

	for _, par := range parents {
		p.removeEdge(par, e)
	}
	for _, ch := range children {
		p.removeEdge(e, ch)
	}

	for _, par := range parents {
		for _, ch := range children {
			if !p.hasIntermediateMember(ch, par, e) {
				p.addEdge(par, ch)
			}
		}
	}

	delete(p.nodes, e)
	p.order.Remove(e)

	return true
}

// hasIntermediateMember reports whether some current member other than
// exclude, lower or upper sits strictly between lower and upper: a member m
// with leq(lower, m) && leq(m, upper). This betweenness test decides
// whether a p->c edge should be reinstated after e is removed from
// between them.
func (p *Poset[E]) hasIntermediateMember(lower, upper, exclude E) bool {
	for _, m := range p.order.Slice() {
		if m == exclude || m == lower || m == upper {
			continue
		}
		if p.leq(lower, m) && p.leq(m, upper) {
			return true
		}
	}
	return false
}
