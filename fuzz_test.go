package poset

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// TestFuzzStringSubsetNoPanics exercises Add/Remove with gofuzz-generated
// carrier values from a fixed, explicitly-seeded source so a failing run
// can be reproduced exactly by pinning the seed.
func TestFuzzStringSubsetNoPanics(t *testing.T) {
	seed := int64(20260130)
	t.Logf("fuzz seed: %d", seed)

	f := fuzz.NewWithSeed(seed).NilChance(0).NumElements(200, 400).Funcs(
		// Distinct letters in sorted order, so charSubsetLeq stays
		// antisymmetric ("a" and "aa", or "ab" and "ba", never both occur).
		func(s *string, c fuzz.Continue) {
			mask := c.Intn(64)
			b := make([]byte, 0, 6)
			for i := 0; i < 6; i++ {
				if mask&(1<<i) != 0 {
					b = append(b, byte('a'+i))
				}
			}
			*s = string(b)
		},
	)

	var values []string
	f.Fuzz(&values)

	p := New[string](charSubsetLeq)
	require.NotPanics(t, func() {
		for i, v := range values {
			if i%5 == 4 && p.Size() > 0 {
				for m := range p.All() {
					p.Remove(m)
					break
				}
			}
			p.Add(v)
			require.True(t, p.IsValid(true))
		}
	})
}

// TestRandomizedStressDivisorOrdering interleaves insertions and removals
// of random integers under divisor ordering, checking IsValid(true) after
// every step. The seed is logged so a failure can be reproduced exactly
// by pinning it.
func TestRandomizedStressDivisorOrdering(t *testing.T) {
	seed := int64(98765)
	t.Logf("stress seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	p := New[int](divides)
	var present []int

	for i := 0; i < 2000; i++ {
		if len(present) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(present))
			e := present[idx]
			require.True(t, p.Remove(e))
			present = append(present[:idx], present[idx+1:]...)
		} else {
			e := rng.Intn(500) + 1
			if p.Add(e) {
				present = append(present, e)
			}
		}
		require.Truef(t, p.IsValid(true), "invalid after step %d (seed %d)", i, seed)
	}
}
