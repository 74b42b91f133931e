package poset

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func divides(a, b int) bool {
	return b%a == 0
}

func divisorRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestDivisorOrderingAncestorsDescendants(t *testing.T) {
	p := New[int](divides, WithInitial(divisorRange(999)...))

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 15, 20, 24, 30, 40, 60}, p.Descendants(120))
	assert.ElementsMatch(t, []int{240, 360, 480, 600, 720, 840, 960}, p.Ancestors(120))
	assert.Len(t, p.Ancestors(1), 998)
	assert.Empty(t, p.Descendants(1))
}

// bitSupersetLeq treats each int as a bitset and orders by subset: a <= b
// iff every bit set in a is also set in b.
func bitSupersetLeq(a, b int) bool {
	return a&b == a
}

func TestBitSupersetInsertRemoveReAdd(t *testing.T) {
	p := New[int](bitSupersetLeq, WithInitial(2112, 2240, 2496))
	require.True(t, p.IsValid(true))

	require.True(t, p.Remove(2240))
	require.True(t, p.IsValid(true))

	require.True(t, p.Add(2240))
	require.True(t, p.IsValid(true))
}

func TestDivisorOrderingHintEquivalence(t *testing.T) {
	n := 200
	elems := divisorRange(n)

	full := New[int](divides, WithInitial(elems...))

	parentHint := func(e int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for mult := 2 * e; mult <= n; mult += e {
				if !yield(mult) {
					return
				}
			}
		}
	}
	childHint := func(e int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for d := 1; d*d <= e; d++ {
				if e%d == 0 {
					if d != e && !yield(d) {
						return
					}
					other := e / d
					if other != e && other != d && !yield(other) {
						return
					}
				}
			}
		}
	}

	hinted := New[int](divides, WithParentHint(parentHint), WithChildHint(childHint), WithInitial(elems...))

	for _, e := range elems {
		fp, fok := full.Parents(e)
		hp, hok := hinted.Parents(e)
		require.Equal(t, fok, hok)
		assert.ElementsMatch(t, fp, hp, "parents of %d must match regardless of hint", e)

		fc, fok := full.Children(e)
		hc, hok := hinted.Children(e)
		require.Equal(t, fok, hok)
		assert.ElementsMatch(t, fc, hc, "children of %d must match regardless of hint", e)
	}

	assert.ElementsMatch(t, full.MaximalElements(), hinted.MaximalElements())
	assert.ElementsMatch(t, full.MinimalElements(), hinted.MinimalElements())
}

func TestAbsentQuerySignal(t *testing.T) {
	p := New[int](divides, WithInitial(2, 4, 8))

	_, ok := p.Parents(99)
	assert.False(t, ok)
	_, ok = p.Children(99)
	assert.False(t, ok)

	parents, ok := p.Parents(4)
	require.True(t, ok)
	assert.Equal(t, []int{8}, parents)
}
