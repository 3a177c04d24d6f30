package coeff

import (
	"fmt"
	"sort"
)

// Term is the key of one coefficient: an unordered pair of variable indices
// stored canonically with I ≤ J. I == J marks a linear term.
type Term struct {
	I, J int
}

// Map is a sparse QUBO: Term → coefficient. Absent terms are zero.
// A Map is not safe for concurrent mutation; compilers build a fresh
// Map per call, so concurrent compilations never share one.
type Map map[Term]float64

// New returns an empty coefficient map.
func New() Map {
	return make(Map)
}

// NewTerm canonicalizes (i, j) into a Term with I ≤ J.
// Panics if either index is negative: a dangling or negative index means the
// caller bypassed the variable indexer, which is a bug, not an input error.
func NewTerm(i, j int) Term {
	if i < 0 || j < 0 {
		panic(fmt.Sprintf("coeff: negative variable index (%d, %d)", i, j))
	}
	if i > j {
		i, j = j, i
	}

	return Term{I: i, J: j}
}

// Set overwrites the coefficient at (i, j) with v.
func (m Map) Set(i, j int, v float64) {
	m[NewTerm(i, j)] = v
}

// Add accumulates delta onto the coefficient at (i, j), inserting the term
// if it does not exist yet. Structure encoders layer their contributions on
// top of completeness terms through Add.
func (m Map) Add(i, j int, delta float64) {
	m[NewTerm(i, j)] += delta
}

// Linear returns the diagonal coefficient of variable i (zero if absent).
func (m Map) Linear(i int) float64 {
	return m[NewTerm(i, i)]
}

// Quadratic returns the coupling coefficient between i and j (zero if absent).
func (m Map) Quadratic(i, j int) float64 {
	return m[NewTerm(i, j)]
}

// NumVars returns one past the highest variable index referenced by the map,
// i.e. the length a dense assignment must have. An empty map has zero.
func (m Map) NumVars() int {
	n := 0
	for t := range m {
		if t.J+1 > n {
			n = t.J + 1
		}
	}

	return n
}

// Terms returns every stored term in a fixed (I, then J) ascending order.
// Two maps built from identical inputs yield identical slices.
func (m Map) Terms() []Term {
	ts := make([]Term, 0, len(m))
	for t := range m {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(a, b int) bool {
		if ts[a].I != ts[b].I {
			return ts[a].I < ts[b].I
		}

		return ts[a].J < ts[b].J
	})

	return ts
}

// Energy evaluates the quadratic form at the given binary assignment:
// the sum of coef·x_i·x_j over all stored terms (x_i·x_i == x_i for binary
// variables). Indices beyond len(bits) are treated as zero, so a caller may
// pass only the item bits of an auxiliary-bit formulation.
func (m Map) Energy(bits []int) float64 {
	var e float64
	for t, coef := range m {
		if t.I >= len(bits) || t.J >= len(bits) {
			continue
		}
		if bits[t.I] != 0 && bits[t.J] != 0 {
			e += coef
		}
	}

	return e
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for t, v := range m {
		c[t] = v
	}

	return c
}
