// Package coeff defines the shared Coefficient Map — the sparse
// representation of a QUBO's quadratic polynomial — together with the
// accumulate-or-insert primitives every compiler in this module builds on.
//
// Overview:
//
//   - A Map associates an unordered pair of variable indices with a real
//     coefficient. Diagonal entries (i == i) are linear terms; off-diagonal
//     entries (i < j) are quadratic coupling terms.
//   - Writes canonicalize pair order so that every stored Term satisfies
//     I ≤ J; absent terms are implicitly zero.
//   - Energy evaluates the polynomial at a binary assignment, the scalar the
//     external sampler minimizes.
//
// Semantics of the two write primitives (they are deliberately distinct):
//
//   - Set(i, j, v)   – overwrite: the term becomes exactly v.
//   - Add(i, j, d)   – accumulate-or-insert: layering structure terms on top
//     of completeness terms is an explicit addition, never an accidental
//     ordering dependency.
//
// Invariants:
//
//   - Indices are non-negative; a negative index is a programmer error and
//     panics immediately rather than corrupting the map.
//   - Terms() iterates in a fixed sorted order, so two maps built from
//     identical inputs serialize identically.
//
// Complexity:
//
//   - Set/Add/Linear/Quadratic: O(1) expected (hash map).
//   - Terms: O(T log T) for T stored terms.
//   - Energy: O(T).
package coeff
