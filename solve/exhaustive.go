package solve

import (
	"fmt"

	"github.com/katalvlaran/qubo/coeff"
)

// DefaultMaxVars caps exhaustive enumeration at 2^24 assignments.
const DefaultMaxVars = 24

// Exhaustive is an exact reference sampler: it evaluates every one of the
// 2^numVars assignments and returns all of them ranked by energy, ties
// broken lexicographically. Use it to validate compilers on small instances;
// production sampling belongs to an external annealing backend.
type Exhaustive struct {
	// MaxVars overrides DefaultMaxVars when > 0.
	MaxVars int
}

// Sample enumerates all assignments of numVars variables.
// Returns ErrBadNumVars for negative counts and ErrTooManyVars beyond the
// cap. Complexity: O(2^numVars · T) for T stored terms.
func (e Exhaustive) Sample(m coeff.Map, offset float64, numVars int) (SampleSet, error) {
	limit := e.MaxVars
	if limit <= 0 {
		limit = DefaultMaxVars
	}
	if numVars < 0 {
		return SampleSet{}, fmt.Errorf("%w: got %d", ErrBadNumVars, numVars)
	}
	if numVars > limit {
		return SampleSet{}, fmt.Errorf("%w: %d > %d", ErrTooManyVars, numVars, limit)
	}

	out := SampleSet{Samples: make([]Sample, 0, 1<<numVars)}
	for mask := 0; mask < 1<<numVars; mask++ {
		bits := make([]int, numVars)
		for i := 0; i < numVars; i++ {
			bits[i] = mask >> i & 1
		}
		out.Samples = append(out.Samples, Sample{
			Bits:        bits,
			Energy:      m.Energy(bits) + offset,
			Occurrences: 1,
		})
	}
	out.sortDeterministic()

	return out, nil
}
