// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import "github.com/tigerwill90/poset/internal/orderedset"

// node is the record held for every current member. It carries no value
// field of its own: the member value is the map key in Poset.nodes, and the
// node only needs to remember its cover relations.
//
// There is no explicit TOP or BOTTOM sentinel node. An empty parents set
// means the member has no greater member, i.e. it is implicitly attached to
// TOP; an empty children set means it is implicitly attached to BOTTOM.
// This representation needs no bookkeeping at all for sentinel-edge
// creation or removal: the set being empty already carries that meaning.
type node[E comparable] struct {
	parents  *orderedset.Set[E]
	children *orderedset.Set[E]
}

func newNode[E comparable]() *node[E] {
	return &node[E]{
		parents:  orderedset.New[E](),
		children: orderedset.New[E](),
	}
}
