// Package coloring compiles the graph coloring decision problem into QUBO
// form: can every node take one of numColors colors so that no edge joins
// two same-colored nodes?
//
// Variables are composite: node i (sorted node order) owns the contiguous
// block i·numColors .. i·numColors+numColors−1, one variable per candidate
// color. Two constraints shape the energy:
//
//   - One-hot per node: the k=1 completeness expansion gives −alpha on every
//     (node, color) diagonal and 2·alpha between two colors of the same
//     node, so exactly one color per node is energetically forced.
//   - Adjacency: beta on the coupling of the same color channel across every
//     edge, so neighbors sharing a color pay beta per conflict.
//
// A proper coloring evaluates to −alpha·|V| before offset; Build returns
// offset = alpha·|V| so it scores exactly 0, and any one-hot or adjacency
// violation scores strictly higher. There is usually no reason to pick
// different alpha and beta.
//
// Errors (sentinel):
//
//   - ErrNilGraph   if the graph is nil.
//   - ErrBadColors  if numColors < 1.
//   - ErrNotOneHot  from Decode when some node has no color or several.
//
// Complexity: O(V·numColors² + E·numColors) terms.
package coloring
