// Package knapsack compiles the 0/1 knapsack problem into QUBO form, in two
// formulations, and owns the loading/validation of knapsack instances.
//
// Build — the simple formulation:
//
//	A single squared-capacity relaxation borrowed from subset sum:
//	alpha·(Σw·x − capacity)² − beta·Σp·x, expanded into
//	item diagonal −beta·p_i + alpha·w_i² − 2·alpha·capacity·w_i and
//	item×item cross 2·alpha·w_i·w_j, with offset alpha·capacity².
//	This is a formulation choice, not a bug: it rewards filling the bag to
//	exactly the capacity, so it is only accurate when the true optimum
//	consumes the capacity almost exactly. Prefer BuildAux when exactness
//	matters. A good first choice is alpha ≥ max(profit)·beta.
//
// BuildAux — the exact formulation with auxiliary slack bits:
//
//	The capacity bound becomes the equality penalty
//	alpha·(Σw·x − S)² − beta·Σp·x, where the slack value S is carried by
//	⌊log₂ capacity⌋ power-of-two bits plus one remainder bit appended after
//	the item variables (see package encode). Every feasible selection can
//	zero the penalty with S equal to its weight; infeasible ones cannot.
//	Choose alpha > max(profit)·beta so no profit can pay for a violated
//	bound. The conventional offset for this formulation is the capacity
//	itself. Slack bits are artifacts of the encoding: strip indices ≥ n
//	(FirstValid does) when reading items out of a returned assignment.
//
// Load reads a (capacity, weights, profits) triple from three files and
// validates in a fixed priority order, so the reported error is
// deterministic for any combination of defects:
//
//	1. every file non-empty          (ErrEmptyInput)
//	2. len(weights) == len(profits)  (ErrLengthMismatch)
//	3. all weights positive          (ErrNonPositiveWeight)
//	4. capacity non-negative         (ErrNegativeCapacity)
//	5. capacity ≥ min(weights)       (ErrInfeasibleCapacity)
package knapsack
