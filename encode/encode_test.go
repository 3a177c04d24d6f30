// Package encode_test exercises the three reusable encoders directly:
// exact coefficient values, the completeness minimum, and the central
// feasible-iff-zeroable property of the auxiliary-bit inequality penalty.
package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/encode"
	"github.com/katalvlaran/qubo/graph"
	"github.com/katalvlaran/qubo/vars"
)

func TestCompleteness_Coefficients(t *testing.T) {
	m := coeff.New()
	encode.Completeness(m, []int{0, 1, 2}, 2, 3) // alpha=3, k=2

	// Linear: alpha·(1 − 2k) = 3·(1 − 4) = −9 on every member.
	for i := 0; i < 3; i++ {
		require.Equal(t, -9.0, m.Linear(i))
	}
	// Quadratic: 2·alpha = 6 on every unordered pair.
	require.Equal(t, 6.0, m.Quadratic(0, 1))
	require.Equal(t, 6.0, m.Quadratic(0, 2))
	require.Equal(t, 6.0, m.Quadratic(1, 2))
	require.Len(t, m, 6)
}

func TestCompleteness_MinimumAtExactlyK(t *testing.T) {
	// alpha·(Σx − k)² + alpha·k² must be 0 exactly at count k, ≥ alpha elsewhere.
	const alpha, k, g = 2.0, 2, 4
	m := coeff.New()
	encode.Completeness(m, []int{0, 1, 2, 3}, k, alpha)
	offset := alpha * k * k

	for mask := 0; mask < 1<<g; mask++ {
		bits := make([]int, g)
		count := 0
		for i := 0; i < g; i++ {
			bits[i] = (mask >> i) & 1
			count += bits[i]
		}
		e := m.Energy(bits) + offset
		if count == k {
			assert.Equal(t, 0.0, e, "mask %b", mask)
		} else {
			assert.GreaterOrEqual(t, e, alpha, "mask %b", mask)
		}
	}
}

func TestEdgeTerms_Polarity(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(10, 30))
	require.NoError(t, g.AddEdge(30, 20))
	ix := vars.NewIndex(g.Nodes()) // 10→0, 20→1, 30→2

	m := coeff.New()
	m.Set(0, 2, 5) // pre-existing completeness coupling
	encode.EdgeTerms(m, g, ix, -2)

	// (10,30) → (0,2): accumulated onto the existing key.
	require.Equal(t, 3.0, m.Quadratic(0, 2))
	// (20,30) → (1,2): inserted fresh.
	require.Equal(t, -2.0, m.Quadratic(1, 2))
}

func TestEdgeChannelTerms_PerColorChannel(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 1))
	ix := vars.NewIndex(g.Nodes())

	m := coeff.New()
	encode.EdgeChannelTerms(m, g, ix, 3, 1.5)

	// One term per color channel, coupling (0·3+c, 1·3+c).
	require.Len(t, m, 3)
	for c := 0; c < 3; c++ {
		require.Equal(t, 1.5, m.Quadratic(c, 3+c))
	}
}

func TestSlackBits(t *testing.T) {
	cases := []struct {
		capacity, numBits, remainder int
	}{
		{1, 0, 1},
		{2, 1, 1},
		{3, 1, 2},
		{7, 2, 4},
		{15, 3, 8},
		{26, 4, 11},
	}
	for _, c := range cases {
		numBits, remainder, err := encode.SlackBits(c.capacity)
		require.NoError(t, err)
		assert.Equal(t, c.numBits, numBits, "capacity %d", c.capacity)
		assert.Equal(t, c.remainder, remainder, "capacity %d", c.capacity)
	}
}

func TestSlackBits_RejectsNonPositive(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		_, _, err := encode.SlackBits(capacity)
		require.ErrorIs(t, err, encode.ErrBadCapacity)
	}
}

// slackValues enumerates every value the slack bits can represent.
func slackValues(numBits, remainder int) []int {
	vals := make([]int, 0, 1<<(numBits+1))
	for mask := 0; mask < 1<<(numBits+1); mask++ {
		s := 0
		for k := 0; k < numBits; k++ {
			if mask>>k&1 == 1 {
				s += 1 << k
			}
		}
		if mask>>numBits&1 == 1 {
			s += remainder
		}
		vals = append(vals, s)
	}

	return vals
}

func TestSlackBits_CoverFullRange(t *testing.T) {
	// The m+1 bit scheme must represent every integer in [0, capacity].
	for capacity := 1; capacity <= 64; capacity++ {
		numBits, remainder, err := encode.SlackBits(capacity)
		require.NoError(t, err)

		seen := make(map[int]bool)
		for _, s := range slackValues(numBits, remainder) {
			seen[s] = true
		}
		for v := 0; v <= capacity; v++ {
			require.True(t, seen[v], "capacity %d misses slack value %d", capacity, v)
		}
		require.Len(t, seen, capacity+1) // and nothing beyond [0, capacity]
	}
}

func TestInequality_FeasibleIffZeroable(t *testing.T) {
	// For every item subset: feasible (weight ≤ capacity) ⇔ some slack
	// setting zeroes the penalty; infeasible ⇒ strictly positive always.
	weights := []int{2, 3, 4}
	const capacity, alpha = 5, 1.0
	n := len(weights)

	m := coeff.New()
	require.NoError(t, encode.Inequality(m, weights, capacity, alpha))
	numBits, _, err := encode.SlackBits(capacity)
	require.NoError(t, err)
	numSlack := numBits + 1

	for sel := 0; sel < 1<<n; sel++ {
		w := 0
		items := make([]int, n)
		for i := 0; i < n; i++ {
			items[i] = sel >> i & 1
			w += items[i] * weights[i]
		}

		min := -1.0
		for sm := 0; sm < 1<<numSlack; sm++ {
			bits := make([]int, n+numSlack)
			copy(bits, items)
			for k := 0; k < numSlack; k++ {
				bits[n+k] = sm >> k & 1
			}
			e := m.Energy(bits)
			if min < 0 || e < min {
				min = e
			}
		}

		if w <= capacity {
			assert.Equal(t, 0.0, min, "subset %b weight %d", sel, w)
		} else {
			assert.Greater(t, min, 0.0, "subset %b weight %d", sel, w)
		}
	}
}

func TestInequality_PenaltyIsSquaredDifference(t *testing.T) {
	// Map energy must equal alpha·(W − S)² for every joint assignment.
	weights := []int{3, 5}
	const capacity, alpha = 6, 2.0
	n := len(weights)

	m := coeff.New()
	require.NoError(t, encode.Inequality(m, weights, capacity, alpha))
	numBits, remainder, err := encode.SlackBits(capacity)
	require.NoError(t, err)
	numSlack := numBits + 1

	for sel := 0; sel < 1<<n; sel++ {
		w := 0
		for i := 0; i < n; i++ {
			w += (sel >> i & 1) * weights[i]
		}
		for sm := 0; sm < 1<<numSlack; sm++ {
			s := 0
			bits := make([]int, n+numSlack)
			for i := 0; i < n; i++ {
				bits[i] = sel >> i & 1
			}
			for k := 0; k < numBits; k++ {
				bits[n+k] = sm >> k & 1
				s += bits[n+k] << k
			}
			bits[n+numBits] = sm >> numBits & 1
			s += bits[n+numBits] * remainder

			d := float64(w - s)
			require.Equal(t, alpha*d*d, m.Energy(bits), "sel %b slack %b", sel, sm)
		}
	}
}

func TestInequality_RejectsBadInput(t *testing.T) {
	m := coeff.New()
	require.ErrorIs(t, encode.Inequality(m, []int{1, 2}, 0, 1), encode.ErrBadCapacity)
	require.ErrorIs(t, encode.Inequality(m, []int{1, -2}, 5, 1), encode.ErrBadWeight)
	require.Empty(t, m) // fail-fast: nothing was written
}
