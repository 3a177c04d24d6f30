package knapsack

import "github.com/katalvlaran/qubo/solve"

// FirstValid scans an energy-ranked sample set for the first assignment
// whose selected items respect the capacity, ignoring every variable with
// index ≥ len(weights) — those are auxiliary slack bits, artifacts of the
// BuildAux encoding, not items. Samplers rank "good" assignments first but
// nothing guarantees the top one satisfies the bound, so callers re-check
// here. Returns the sample with its total weight and profit, and ok=false
// when no sample in the set is valid.
func FirstValid(set solve.SampleSet, weights, profits []int, capacity int) (sample solve.Sample, weight, profit int, ok bool) {
	n := len(weights)
	for _, smp := range set.Samples {
		weight, profit = 0, 0
		for i, b := range smp.Bits {
			// Stop counting where the items end.
			if i == n {
				break
			}
			if b != 0 {
				weight += weights[i]
				profit += profits[i]
			}
		}
		if weight <= capacity {
			return smp, weight, profit, true
		}
	}

	return solve.Sample{}, 0, 0, false
}
