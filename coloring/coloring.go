package coloring

import (
	"fmt"

	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/encode"
	"github.com/katalvlaran/qubo/graph"
	"github.com/katalvlaran/qubo/vars"
)

// Build compiles the numColors-coloring problem on g into a coefficient map
// and the offset alpha·|V| that zeroes a proper coloring's energy.
//
// Variable layout: node index i (sorted node order) owns the flat indices
// i·numColors .. i·numColors+numColors−1.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. numColors ≥ 1 (ErrBadColors).
//
// Complexity: O(V·numColors² + E·numColors).
func Build(g *graph.Graph, numColors int, opts ...Option) (coeff.Map, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if numColors < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadColors, numColors)
	}

	ix := vars.NewIndex(g.Nodes())
	m := coeff.New()

	// One-hot constraint: exactly one color per node.
	group := make([]int, numColors)
	for i := 0; i < ix.Len(); i++ {
		for c := 0; c < numColors; c++ {
			group[c] = vars.Composite(i, c, numColors)
		}
		encode.Completeness(m, group, 1, cfg.Alpha)
	}

	// Adjacency constraint: same color across an edge costs beta,
	// one fresh keyed entry per color channel.
	encode.EdgeChannelTerms(m, g, ix, numColors, cfg.Beta)

	return m, cfg.Alpha * float64(ix.Len()), nil
}

// Indexer returns the node indexer Build used (index i ↔ i-th smallest
// node ID).
func Indexer(g *graph.Graph) *vars.Index {
	return vars.NewIndex(g.Nodes())
}

// Decode translates a flat assignment into (node, color) pairs, in node
// order. Returns ErrNotOneHot if any node has zero or several colors set —
// such assignments violate the one-hot constraint and carry positive energy.
func Decode(bits []int, ix *vars.Index, numColors int) ([]NodeColor, error) {
	out := make([]NodeColor, 0, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		color, count := 0, 0
		for c := 0; c < numColors; c++ {
			idx := vars.Composite(i, c, numColors)
			if idx < len(bits) && bits[idx] != 0 {
				color = c
				count++
			}
		}
		id, _ := ix.IDOf(i)
		if count != 1 {
			return nil, fmt.Errorf("%w: node %d has %d colors", ErrNotOneHot, id, count)
		}
		out = append(out, NodeColor{Node: id, Color: color})
	}

	return out, nil
}
