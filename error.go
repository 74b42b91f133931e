// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/poset/blob/master/LICENSE.txt.

package poset

import (
	"errors"
	"fmt"
)

// ErrCorrupted is the sentinel wrapped by every [CorruptionError]. Use
// errors.Is(err, ErrCorrupted) to test for structural corruption without
// depending on the concrete invariant that failed.
var ErrCorrupted = errors.New("poset: structural corruption detected")

// Invariant identifies which of the data-model invariants a
// [CorruptionError] reports a violation of.
type Invariant int

const (
	// InvariantCoverSoundness reports a recorded edge p->c where leq(c, p)
	// does not hold, or where c == p.
	InvariantCoverSoundness Invariant = iota
	// InvariantCoverMinimality reports a recorded edge p->c for which some
	// other member sits strictly between c and p.
	InvariantCoverMinimality
	// InvariantCoverCompleteness reports a pair of members a, b with
	// leq(a, b) for which no path of recorded edges connects b down to a.
	InvariantCoverCompleteness
	// InvariantEdgeSymmetry reports a parent/child edge recorded on one side
	// of the pair but not the other.
	InvariantEdgeSymmetry
)

func (inv Invariant) String() string {
	switch inv {
	case InvariantCoverSoundness:
		return "cover soundness"
	case InvariantCoverMinimality:
		return "cover minimality"
	case InvariantCoverCompleteness:
		return "cover completeness"
	case InvariantEdgeSymmetry:
		return "edge symmetry"
	default:
		return "unknown invariant"
	}
}

// CorruptionError is raised by [Poset.IsValid] when called with fail=true
// and a structural invariant does not hold. It names the specific
// invariant and the member(s) involved so a caller debugging corruption
// doesn't have to re-run the whole check by hand.
type CorruptionError struct {
	// Which is the invariant that failed.
	Which Invariant
	// Detail is a human-readable description of the offending edge or pair.
	Detail string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("poset: %s violated: %s", e.Which, e.Detail)
}

// Unwrap returns the sentinel value [ErrCorrupted].
func (e *CorruptionError) Unwrap() error {
	return ErrCorrupted
}
