package knapsack

import (
	"fmt"

	"github.com/katalvlaran/qubo/instance"
)

// Load reads a knapsack instance from three files: one capacity value,
// item weights, and item profits (one integer per line each).
//
// Validation runs in the fixed priority order documented in doc.go, so the
// reported error is deterministic for any combination of defects. File
// access errors (instance.ErrNotFound) surface as-is.
func Load(capacityPath, weightsPath, profitsPath string) (capacity int, weights, profits []int, err error) {
	capacityList, err := instance.ReadIntegers(capacityPath)
	if err != nil {
		return 0, nil, nil, err
	}
	weights, err = instance.ReadIntegers(weightsPath)
	if err != nil {
		return 0, nil, nil, err
	}
	profits, err = instance.ReadIntegers(profitsPath)
	if err != nil {
		return 0, nil, nil, err
	}

	// 1. Emptiness, capacity file first.
	if len(capacityList) == 0 {
		return 0, nil, nil, fmt.Errorf("%w: capacity file %s", ErrEmptyInput, capacityPath)
	}
	if len(weights) == 0 {
		return 0, nil, nil, fmt.Errorf("%w: weights file %s", ErrEmptyInput, weightsPath)
	}
	if len(profits) == 0 {
		return 0, nil, nil, fmt.Errorf("%w: profits file %s", ErrEmptyInput, profitsPath)
	}
	capacity = capacityList[0]

	// 2. Length mismatch.
	if len(weights) != len(profits) {
		return 0, nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(weights), len(profits))
	}

	// 3. Non-positive weights.
	minWeight := weights[0]
	for _, w := range weights {
		if w <= 0 {
			return 0, nil, nil, fmt.Errorf("%w: got %d", ErrNonPositiveWeight, w)
		}
		if w < minWeight {
			minWeight = w
		}
	}

	// 4. Negative capacity.
	if capacity < 0 {
		return 0, nil, nil, fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}

	// 5. Capacity below the minimum weight: no item can be selected.
	if capacity < minWeight {
		return 0, nil, nil, fmt.Errorf("%w: capacity %d < minimum weight %d",
			ErrInfeasibleCapacity, capacity, minWeight)
	}

	return capacity, weights, profits, nil
}
