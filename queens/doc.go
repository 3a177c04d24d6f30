// Package queens compiles the N-queens placement problem into QUBO form:
// place n queens on an n×n board so that no two share a row, column or
// diagonal.
//
// The board is modeled as an attack-conflict graph: one node per square
// (node ID row·n + col) and one edge per attacking pair. AttackGraph builds
// it from the pairwise predicate — same row, same column, or
// |Δrow| == |Δcol| — which is correct by construction for every board size
// (the usual per-diagonal enumeration loops are easy to get asymmetric on
// long diagonals; the predicate form sidesteps that entirely and is verified
// against an independent pair count in the tests).
//
// The formulation then mirrors the clique compiler with inverted edge
// polarity:
//
//   - Completeness penalty alpha·(Σx − n)² over all n² squares: exactly n
//     queens must be placed.
//   - Structure penalty +alpha per selected attacking pair, layered onto the
//     completeness coupling of that pair.
//
// With offset alpha·n², a conflict-free placement of n queens evaluates to
// exactly 0 and everything else strictly higher.
//
// Errors (sentinel):
//
//   - ErrNilGraph     if the conflict graph is nil.
//   - ErrBadBoardSize if n < 1.
//
// Complexity: O(n⁴) terms — the completeness constraint couples every pair
// of squares.
package queens
