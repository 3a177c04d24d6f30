package vertexcover

import (
	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/graph"
	"github.com/katalvlaran/qubo/vars"
)

// Build compiles the minimum vertex cover problem on g into a coefficient
// map and the offset 2·beta·|E|. After the offset a valid cover C scores
// beta·|C|; every uncovered edge adds alpha on top, so with beta < alpha the
// ground state is a minimum cover.
//
// Validation: g must be non-nil (ErrNilGraph).
// Complexity: O(V + E).
func Build(g *graph.Graph, opts ...Option) (coeff.Map, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}

	ix := vars.NewIndex(g.Nodes())
	m := coeff.New()

	// Node objective plus the linear part of the coverage penalty.
	for i, id := range ix.IDs() {
		deg, _ := g.Degree(id) // id comes from g.Nodes(), cannot miss
		m.Set(i, i, cfg.Beta-cfg.Alpha*float64(deg))
	}

	// Quadratic part of the coverage penalty.
	for _, e := range g.Edges() {
		i, _ := ix.IndexOf(e.U)
		j, _ := ix.IndexOf(e.V)
		m.Set(i, j, cfg.Alpha)
	}

	return m, 2 * cfg.Beta * float64(g.NumEdges()), nil
}

// Indexer returns the node indexer Build used (index i ↔ i-th smallest
// node ID).
func Indexer(g *graph.Graph) *vars.Index {
	return vars.NewIndex(g.Nodes())
}

// Cover translates a flat assignment into the selected node IDs,
// in ascending order.
func Cover(bits []int, ix *vars.Index) []int {
	out := make([]int, 0, len(bits))
	for i, b := range bits {
		if b == 0 {
			continue
		}
		if id, ok := ix.IDOf(i); ok {
			out = append(out, id)
		}
	}

	return out
}
