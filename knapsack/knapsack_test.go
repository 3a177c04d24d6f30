package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubo/knapsack"
	"github.com/katalvlaran/qubo/solve"
)

func TestBuild_Coefficients(t *testing.T) {
	weights := []int{2, 3, 4}
	profits := []int{5, 6, 7}
	const capacity = 5

	m, offset, err := knapsack.Build(weights, profits, capacity)
	require.NoError(t, err)

	// Diagonal: −p_i + w_i² − 2·capacity·w_i.
	require.Equal(t, -21.0, m.Linear(0)) // −5 + 4 − 20
	require.Equal(t, -27.0, m.Linear(1)) // −6 + 9 − 30
	require.Equal(t, -31.0, m.Linear(2)) // −7 + 16 − 40

	// Cross: 2·w_i·w_j.
	require.Equal(t, 12.0, m.Quadratic(0, 1))
	require.Equal(t, 16.0, m.Quadratic(0, 2))
	require.Equal(t, 24.0, m.Quadratic(1, 2))

	// Offset: alpha·capacity².
	require.Equal(t, 25.0, offset)
	require.Len(t, m, 6)
}

func TestBuild_ExactFillIsGroundZero(t *testing.T) {
	// With beta small against alpha the relaxation rewards an exact fill:
	// items {0,1} weigh exactly the capacity.
	weights := []int{2, 3, 4}
	profits := []int{5, 6, 7}
	m, offset, err := knapsack.Build(weights, profits, 5, knapsack.WithAlpha(7))
	require.NoError(t, err)

	exact := m.Energy([]int{1, 1, 0}) + offset
	require.Equal(t, -11.0, exact) // penalty zero, profit −11

	// Any other subset leaves a positive squared gap times alpha.
	for _, bits := range [][]int{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 1, 1}} {
		assert.Greater(t, m.Energy(bits)+offset, exact)
	}
}

func TestBuildAux_ConcreteScenario(t *testing.T) {
	// weights [12,7,11,8,9], capacity 26 → 4 power bits (indices 5..8),
	// remainder 26 − 15 = 11 at index 9.
	weights := []int{12, 7, 11, 8, 9}
	profits := []int{24, 13, 23, 15, 16}
	const capacity = 26

	m, offset, err := knapsack.BuildAux(weights, profits, capacity)
	require.NoError(t, err)

	numSlack, err := knapsack.NumSlack(capacity)
	require.NoError(t, err)
	require.Equal(t, 5, numSlack)
	require.Equal(t, 10, m.NumVars())
	require.Equal(t, 26.0, offset)

	// Item diagonal: −p_i + w_i².
	require.Equal(t, 120.0, m.Linear(0)) // −24 + 144
	require.Equal(t, 65.0, m.Linear(4))  // −16 + 81

	// Item × item: 2·w_i·w_j.
	require.Equal(t, 168.0, m.Quadratic(0, 1))

	// Slack diagonal: (2^k)² and remainder².
	require.Equal(t, 1.0, m.Linear(5))
	require.Equal(t, 4.0, m.Linear(6))
	require.Equal(t, 64.0, m.Linear(8))
	require.Equal(t, 121.0, m.Linear(9))

	// Item × slack: −2·w_i·2^k and −2·w_i·remainder.
	require.Equal(t, -144.0, m.Quadratic(4, 8)) // −2·9·8
	require.Equal(t, -198.0, m.Quadratic(4, 9)) // −2·9·11

	// Slack × slack: 2^(k+l+1) and 2^(k+1)·remainder.
	require.Equal(t, 4.0, m.Quadratic(5, 6))
	require.Equal(t, 22.0, m.Quadratic(5, 9))  // 2·1·11
	require.Equal(t, 176.0, m.Quadratic(8, 9)) // 2·8·11
}

func TestBuildAux_Validation(t *testing.T) {
	_, _, err := knapsack.BuildAux(nil, nil, 5)
	require.ErrorIs(t, err, knapsack.ErrEmptyInput)

	_, _, err = knapsack.BuildAux([]int{1, 2}, []int{1}, 5)
	require.ErrorIs(t, err, knapsack.ErrLengthMismatch)

	_, _, err = knapsack.BuildAux([]int{1, 0}, []int{1, 1}, 5)
	require.ErrorIs(t, err, knapsack.ErrNonPositiveWeight)

	_, _, err = knapsack.BuildAux([]int{1, 2}, []int{1, 1}, 0)
	require.ErrorIs(t, err, knapsack.ErrBadCapacity)

	_, _, err = knapsack.Build([]int{1, 2}, []int{1, 1}, -3)
	require.ErrorIs(t, err, knapsack.ErrBadCapacity)
}

func TestBuildAux_GroundStateIsOptimalSelection(t *testing.T) {
	// capacity 5, weights [2,3,4]: best feasible profit is items {0,1}.
	weights := []int{2, 3, 4}
	profits := []int{5, 6, 7}
	const capacity = 5

	m, offset, err := knapsack.BuildAux(weights, profits, capacity,
		knapsack.WithAlpha(8)) // > max(profit)·beta
	require.NoError(t, err)

	set, err := solve.Exhaustive{}.Sample(m, offset, m.NumVars())
	require.NoError(t, err)

	first, ok := set.First()
	require.True(t, ok)
	// Items {0,1} with slack S = 5 (all three slack bits: 1+2+2).
	require.Equal(t, []int{1, 1, 0, 1, 1, 1}, first.Bits)
	require.Equal(t, -11.0+float64(capacity), first.Energy)
}

func TestBuildAux_Deterministic(t *testing.T) {
	weights := []int{12, 7, 11, 8, 9}
	profits := []int{24, 13, 23, 15, 16}
	m1, o1, err := knapsack.BuildAux(weights, profits, 26)
	require.NoError(t, err)
	m2, o2, err := knapsack.BuildAux(weights, profits, 26)
	require.NoError(t, err)
	require.Equal(t, o1, o2)
	require.Equal(t, m1, m2)
	require.Equal(t, m1.Terms(), m2.Terms())
}

func TestFirstValid(t *testing.T) {
	weights := []int{2, 3, 4}
	profits := []int{5, 6, 7}
	const capacity = 5

	set := solve.SampleSet{Samples: []solve.Sample{
		// Ranked best-first but infeasible: weight 9 > 5.
		{Bits: []int{1, 1, 1, 0, 0, 0}, Energy: -18},
		// First valid: items {0,1}, slack bits ignored.
		{Bits: []int{1, 1, 0, 1, 1, 1}, Energy: -6},
		{Bits: []int{0, 0, 1, 0, 0, 1}, Energy: -2},
	}}

	smp, weight, profit, ok := knapsack.FirstValid(set, weights, profits, capacity)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 0, 1, 1, 1}, smp.Bits)
	assert.Equal(t, 5, weight)
	assert.Equal(t, 11, profit)
}

func TestFirstValid_NoneValid(t *testing.T) {
	set := solve.SampleSet{Samples: []solve.Sample{
		{Bits: []int{1, 1, 1}, Energy: 0},
	}}
	_, _, _, ok := knapsack.FirstValid(set, []int{5, 5, 5}, []int{1, 1, 1}, 4)
	require.False(t, ok)
}
