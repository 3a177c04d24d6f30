package encode

import (
	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/graph"
	"github.com/katalvlaran/qubo/vars"
)

// EdgeTerms layers delta onto the coupling coefficient of every edge of g,
// addressed through the indexer ix. Negative delta rewards adjacency
// (clique), positive delta penalizes it (N-queens attack pairs).
//
// Nodes of g must all be known to ix; the indexer is built from g.Nodes(),
// so a miss cannot occur for a well-formed composition.
// Complexity: O(E).
func EdgeTerms(m coeff.Map, g *graph.Graph, ix *vars.Index, delta float64) {
	for _, e := range g.Edges() {
		i, _ := ix.IndexOf(e.U)
		j, _ := ix.IndexOf(e.V)
		m.Add(i, j, delta)
	}
}

// EdgeChannelTerms layers delta onto the coupling of each sub-channel of two
// adjacent composite variables: for every edge (u, v) and every sub in
// [0, groupSize), the flat pair (u·groupSize+sub, v·groupSize+sub) receives
// delta. This is the same-color adjacency penalty of graph coloring.
// Complexity: O(E·groupSize).
func EdgeChannelTerms(m coeff.Map, g *graph.Graph, ix *vars.Index, groupSize int, delta float64) {
	for _, e := range g.Edges() {
		iu, _ := ix.IndexOf(e.U)
		iv, _ := ix.IndexOf(e.V)
		for sub := 0; sub < groupSize; sub++ {
			m.Add(vars.Composite(iu, sub, groupSize), vars.Composite(iv, sub, groupSize), delta)
		}
	}
}
