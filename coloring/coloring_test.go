package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubo/coloring"
	"github.com/katalvlaran/qubo/graph"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// colorBits builds the flat assignment for explicit node colors.
func colorBits(colors []int, numColors int) []int {
	bits := make([]int, len(colors)*numColors)
	for i, c := range colors {
		bits[i*numColors+c] = 1
	}

	return bits
}

func TestBuild_Validation(t *testing.T) {
	_, _, err := coloring.Build(nil, 3)
	require.ErrorIs(t, err, coloring.ErrNilGraph)

	_, _, err = coloring.Build(triangle(t), 0)
	require.ErrorIs(t, err, coloring.ErrBadColors)
}

func TestBuild_Coefficients(t *testing.T) {
	g := triangle(t)
	const k = 3
	m, offset, err := coloring.Build(g, k, coloring.WithAlpha(2), coloring.WithBeta(5))
	require.NoError(t, err)

	// One-hot: −alpha on each (node, color) diagonal, 2·alpha within a node.
	require.Equal(t, -2.0, m.Linear(0))
	require.Equal(t, -2.0, m.Linear(8)) // node 2, color 2
	require.Equal(t, 4.0, m.Quadratic(0, 1))
	require.Equal(t, 4.0, m.Quadratic(6, 8))

	// Adjacency: beta per shared color channel across an edge.
	require.Equal(t, 5.0, m.Quadratic(0, 3)) // nodes 0–1, color 0
	require.Equal(t, 5.0, m.Quadratic(2, 8)) // nodes 0–2, color 2

	// Offset: alpha·|V|.
	require.Equal(t, 6.0, offset)
}

func TestBuild_ProperColoringIsZero(t *testing.T) {
	g := triangle(t)
	m, offset, err := coloring.Build(g, 3)
	require.NoError(t, err)

	// A rainbow coloring of the triangle is proper: energy exactly 0.
	bits := colorBits([]int{0, 1, 2}, 3)
	assert.Equal(t, 0.0, m.Energy(bits)+offset)
	// Before the offset it sits at −alpha·|V|.
	assert.Equal(t, -3.0, m.Energy(bits))
}

func TestBuild_ViolationsScoreHigher(t *testing.T) {
	g := triangle(t)
	m, offset, err := coloring.Build(g, 3)
	require.NoError(t, err)

	// Adjacency violation: nodes 0 and 1 share color 0.
	adj := colorBits([]int{0, 0, 1}, 3)
	assert.Equal(t, 1.0, m.Energy(adj)+offset) // exactly beta

	// One-hot violation: node 0 takes two colors.
	two := colorBits([]int{0, 1, 2}, 3)
	two[1] = 1
	assert.Greater(t, m.Energy(two)+offset, 0.0)

	// One-hot violation: node 0 takes no color.
	none := colorBits([]int{0, 1, 2}, 3)
	none[0] = 0
	assert.Greater(t, m.Energy(none)+offset, 0.0)
}

func TestBuild_EmptyGraph(t *testing.T) {
	// Zero nodes compile to an empty map with a zero offset.
	m, offset, err := coloring.Build(graph.New(), 3)
	require.NoError(t, err)
	require.Empty(t, m)
	require.Equal(t, 0.0, offset)
}

func TestBuild_Deterministic(t *testing.T) {
	g := triangle(t)
	m1, o1, err := coloring.Build(g, 4)
	require.NoError(t, err)
	m2, o2, err := coloring.Build(g, 4)
	require.NoError(t, err)
	require.Equal(t, o1, o2)
	require.Equal(t, m1, m2)
}

func TestDecode(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(5, 9)) // indices: 5→0, 9→1
	ix := coloring.Indexer(g)

	pairs, err := coloring.Decode(colorBits([]int{1, 0}, 2), ix, 2)
	require.NoError(t, err)
	require.Equal(t, []coloring.NodeColor{{Node: 5, Color: 1}, {Node: 9, Color: 0}}, pairs)

	_, err = coloring.Decode([]int{1, 1, 1, 0}, ix, 2)
	require.ErrorIs(t, err, coloring.ErrNotOneHot)
}
