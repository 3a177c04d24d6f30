package clique

import (
	"fmt"

	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/encode"
	"github.com/katalvlaran/qubo/graph"
	"github.com/katalvlaran/qubo/vars"
)

// Build compiles the k-clique problem on g into a coefficient map and the
// offset that zeroes the energy of a true k-clique's characteristic vector.
//
// Variables follow sorted node order (index i ↔ i-th smallest node ID); use
// Indexer to translate a returned assignment back to node IDs.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. 1 ≤ k ≤ |V| (ErrBadSize).
//
// Complexity: O(V² + E).
func Build(g *graph.Graph, k int, opts ...Option) (coeff.Map, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}
	ix := vars.NewIndex(g.Nodes())
	if k < 1 || k > ix.Len() {
		return nil, 0, fmt.Errorf("%w: k=%d with %d nodes", ErrBadSize, k, ix.Len())
	}

	m := coeff.New()

	// Size constraint: penalize any selection count other than k.
	group := make([]int, ix.Len())
	for i := range group {
		group[i] = i
	}
	encode.Completeness(m, group, k, cfg.Alpha)

	// Structure reward: selecting a real edge lowers energy relative to a
	// non-edge under the completeness penalty.
	encode.EdgeTerms(m, g, ix, -cfg.Beta)

	kf := float64(k)
	offset := cfg.Alpha*kf*kf + cfg.Beta*kf*(kf-1)/2

	return m, offset, nil
}

// Indexer returns the node indexer Build used: index i ↔ i-th smallest
// node ID. It lets callers translate flat assignments to node IDs.
func Indexer(g *graph.Graph) *vars.Index {
	return vars.NewIndex(g.Nodes())
}

// Selected translates a flat assignment into the chosen node IDs,
// in ascending order.
func Selected(bits []int, ix *vars.Index) []int {
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
