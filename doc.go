// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

// Package poset implements a dynamic partially-ordered set: a collection of
// distinct elements together with a caller-supplied partial order, which
// maintains the Hasse diagram (cover relation) of the order under insertion
// and removal so that parent, child, ancestor and descendant queries run
// against the reduced graph rather than its transitive closure.
//
// A [Poset] is parameterized by a carrier type E, which must support value
// equality and stable hashing (it is used as a Go map key), and an ordering
// predicate supplied to [New]. The predicate is trusted to be reflexive,
// antisymmetric and transitive; the engine does not verify this beyond what
// [Poset.IsValid] happens to catch as a side effect of checking the cover
// relation.
//
// Poset is not safe for concurrent use. It performs no I/O and holds no
// goroutines or timers; every method runs synchronously to completion on the
// caller's goroutine. Callers that need concurrent access must supply their
// own exclusion.
package poset
