// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import (
	"fmt"
	"strings"
)

// Render appends a human-readable dump of the poset to buf, one line per
// member in insertion order, parent and child lists rendered bracketed and
// comma-separated in the member's canonical string form. An empty poset
// renders as a single two-line block with nothing between the braces.
func (p *Poset[E]) Render(buf *strings.Builder) {
	fmt.Fprintf(buf, "PartiallyOrderedSet size: %d elements: {\n", p.Size())
	for _, e := range p.order.Slice() {
		n := p.nodes[e]
		fmt.Fprintf(buf, "  %v parents: [%s] children: [%s]\n", e, joinCanonical(n.parents.Slice()), joinCanonical(n.children.Slice()))
	}
	buf.WriteString("}")
}

// String returns Render's output as a string.
func (p *Poset[E]) String() string {
	var buf strings.Builder
	p.Render(&buf)
	return buf.String()
}

func joinCanonical[E comparable](elems []E) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ", ")
}
