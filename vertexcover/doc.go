// Package vertexcover compiles the minimum vertex cover optimization problem
// into QUBO form: select the fewest nodes so that every edge touches at
// least one selected node.
//
// Formulation (one binary variable per node, sorted node order):
//
//   - Per node: linear term beta − alpha·degree(node). The beta part is the
//     minimization objective (every selected node costs beta); the degree
//     part comes from expanding the per-edge coverage penalty
//     alpha·(1 − x_u)·(1 − x_v).
//   - Per edge: quadratic term +alpha.
//
// Keep beta < alpha, otherwise dropping a node out of the cover can pay for
// an uncovered edge. With the documented default alpha = 2·beta and offset
// 2·beta·|E|, every valid cover C evaluates to exactly beta·|C|, so the
// minimum cover is the ground state; an uncovered edge costs alpha on top.
//
// Unlike the feasibility compilers in this module the ground state is not
// zero — vertex cover is an optimization problem and the residual beta·|C|
// is precisely the quantity being minimized.
//
// Errors (sentinel):
//
//   - ErrNilGraph if the graph is nil.
//
// Complexity: O(V + E) terms.
package vertexcover
