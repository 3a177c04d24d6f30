// Package encode implements the reusable penalty encoders the problem
// compilers compose: completeness (exactly-k / one-hot) constraints,
// edge-structure terms, and the auxiliary-bit inequality encoder.
//
// Completeness:
//
//	Expanding alpha·(Σx − k)² over a group of variables yields a linear term
//	alpha·(1 − 2k) on every member and a quadratic term 2·alpha between every
//	unordered pair — an O(g²) complete-pair enumeration, unavoidable because
//	the constraint couples every pair. The expansion drops the constant
//	alpha·k², which each compiler restores through its energy offset.
//	The sub-expression alone is minimized at exactly 0 when precisely k
//	group members are set; any other count costs at least alpha.
//
// Edge structure terms:
//
//	EdgeTerms layers a fixed delta onto the coupling coefficient of every
//	graph edge (reward adjacency with delta < 0, penalize with delta > 0).
//	EdgeChannelTerms does the same per sub-channel of composite variables —
//	the same-color conflict terms of graph coloring.
//
// Inequality (auxiliary bits) — encode, square, expand:
//
//	Σ(weight_i·x_i) ≤ capacity is turned into the equality penalty
//	alpha·(Σ weight_i·x_i − S)², where the slack value S ranges over
//	[0, capacity] using m = ⌊log₂ capacity⌋ bits weighted 2⁰..2^(m−1) plus
//	one remainder bit weighted capacity − (2^m − 1). Every integer in
//	[0, capacity] is representable, so every feasible selection admits a
//	slack setting that zeroes the penalty, and no infeasible one does.
//	Squaring the linear form and collecting terms produces item, slack and
//	item×slack coefficients; the constant term of this expansion is zero.
//
// Errors (sentinel):
//
//   - ErrBadCapacity if capacity < 1 (⌊log₂ 0⌋ is undefined; rejected
//     before any coefficient is written).
package encode
