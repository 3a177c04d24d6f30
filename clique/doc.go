// Package clique compiles the k-clique decision problem into QUBO form:
// does an undirected graph contain a complete subgraph on k nodes?
//
// Formulation (one binary variable per node, sorted node order):
//
//   - Completeness penalty alpha·(Σx − k)²: selecting any number of nodes
//     other than k costs at least alpha.
//   - Structure reward −beta per selected edge: among all exactly-k
//     selections, real cliques (k·(k−1)/2 internal edges) sit strictly
//     lowest; every missing edge raises the energy by beta.
//
// With offset alpha·k² + beta·k·(k−1)/2 the characteristic vector of a true
// k-clique evaluates to exactly 0, and any exactly-k non-clique evaluates to
// a positive multiple of beta. Choose alpha > beta·k so that no count
// violation can pay for itself through edge rewards.
//
// Errors (sentinel):
//
//   - ErrNilGraph   if the graph is nil.
//   - ErrBadSize    if k < 1 or k exceeds the node count.
//
// Complexity: O(V² + E) terms.
package clique
