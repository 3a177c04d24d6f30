package queens

import (
	"fmt"

	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/encode"
	"github.com/katalvlaran/qubo/graph"
	"github.com/katalvlaran/qubo/vars"
)

// AttackGraph builds the conflict graph of an n×n board: node row·n+col per
// square, one edge per pair of squares a queen can attack between (same row,
// same column, or same diagonal). Returns ErrBadBoardSize when n < 1.
// Complexity: O(n⁴) pair checks, O(n³) edges.
func AttackGraph(n int) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBoardSize, n)
	}

	g := graph.New()
	total := n * n
	for a := 0; a < total; a++ {
		g.AddNode(a)
		ra, ca := a/n, a%n
		for b := a + 1; b < total; b++ {
			rb, cb := b/n, b%n
			if attacks(ra, ca, rb, cb) {
				// a < b and a != b, so AddEdge cannot fail here.
				_ = g.AddEdge(a, b)
			}
		}
	}

	return g, nil
}

// attacks reports whether queens on the two distinct squares threaten each
// other: same row, same column, or |Δrow| == |Δcol|.
func attacks(r1, c1, r2, c2 int) bool {
	if r1 == r2 || c1 == c2 {
		return true
	}
	dr, dc := r1-r2, c1-c2
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr == dc
}

// Build compiles the N-queens problem over the given conflict graph into a
// coefficient map and the offset alpha·n² that zeroes a valid placement.
// The graph is a parameter (rather than built internally) so callers can
// compile restricted boards or pre-built conflict structures.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. n ≥ 1 (ErrBadBoardSize).
//
// Complexity: O(V² + E) with V = n² squares.
func Build(g *graph.Graph, n int, opts ...Option) (coeff.Map, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if n < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadBoardSize, n)
	}

	ix := vars.NewIndex(g.Nodes())
	m := coeff.New()

	// Exactly n queens on the board.
	group := make([]int, ix.Len())
	for i := range group {
		group[i] = i
	}
	encode.Completeness(m, group, n, cfg.Alpha)

	// Each selected attacking pair costs alpha, added onto the
	// completeness coupling the pair already carries.
	encode.EdgeTerms(m, g, ix, cfg.Alpha)

	nf := float64(n)

	return m, cfg.Alpha * nf * nf, nil
}

// Positions translates a flat assignment over an n×n board into the squares
// holding queens, in board order.
func Positions(bits []int, n int) []Square {
	out := make([]Square, 0, n)
	for i, b := range bits {
		if b != 0 && i < n*n {
			out = append(out, Square{Row: i / n, Col: i % n})
		}
	}

	return out
}
