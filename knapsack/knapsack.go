package knapsack

import (
	"fmt"

	"github.com/katalvlaran/qubo/coeff"
	"github.com/katalvlaran/qubo/encode"
)

// validate fails fast on malformed compiler input, before any coefficient
// map construction: mismatched lists, empty items, non-positive weights,
// non-positive capacity.
func validate(weights, profits []int, capacity int) error {
	if len(weights) == 0 || len(profits) == 0 {
		return ErrEmptyInput
	}
	if len(weights) != len(profits) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(weights), len(profits))
	}
	for _, w := range weights {
		if w <= 0 {
			return fmt.Errorf("%w: got %d", ErrNonPositiveWeight, w)
		}
	}
	if capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return nil
}

// Build compiles the simple (subset-sum relaxation) knapsack formulation:
// alpha·(Σw·x − capacity)² − beta·Σp·x with offset alpha·capacity².
// One variable per item, in list order. Only accurate when the optimum
// consumes the capacity almost exactly; see BuildAux for the exact encoding.
// Complexity: O(n²).
func Build(weights, profits []int, capacity int, opts ...Option) (coeff.Map, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(weights, profits, capacity); err != nil {
		return nil, 0, err
	}

	m := coeff.New()
	c := float64(capacity)
	for i, wi := range weights {
		w := float64(wi)
		m.Set(i, i, -cfg.Beta*float64(profits[i])+cfg.Alpha*w*w-2*cfg.Alpha*c*w)
		for j := i + 1; j < len(weights); j++ {
			m.Set(i, j, 2*cfg.Alpha*w*float64(weights[j]))
		}
	}

	return m, cfg.Alpha * c * c, nil
}

// BuildAux compiles the exact knapsack formulation with auxiliary slack
// bits: the profit objective −beta·p_i on each item diagonal plus the
// inequality penalty of package encode, whose slack bits occupy indices
// n..n+NumSlack(capacity)−1. The returned offset is the capacity, the
// conventional zero point for this formulation.
// Complexity: O((n + log capacity)²).
func BuildAux(weights, profits []int, capacity int, opts ...Option) (coeff.Map, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(weights, profits, capacity); err != nil {
		return nil, 0, err
	}

	m := coeff.New()
	// Objective first; the inequality encoder accumulates onto the same
	// item diagonals.
	for i, p := range profits {
		m.Add(i, i, -cfg.Beta*float64(p))
	}
	if err := encode.Inequality(m, weights, capacity, cfg.Alpha); err != nil {
		return nil, 0, err
	}

	return m, float64(capacity), nil
}

// NumSlack returns how many auxiliary slack variables BuildAux appends for
// the given capacity: ⌊log₂ capacity⌋ power-of-two bits plus the remainder
// bit. Returns encode.ErrBadCapacity when capacity < 1.
func NumSlack(capacity int) (int, error) {
	numBits, _, err := encode.SlackBits(capacity)
	if err != nil {
		return 0, err
	}

	return numBits + 1, nil
}
