package solve

import (
	"errors"

	"github.com/katalvlaran/qubo/coeff"
)

// Sentinel errors for samplers.
var (
	// ErrTooManyVars indicates the exhaustive sampler was asked to
	// enumerate more variables than its cap allows.
	ErrTooManyVars = errors.New("solve: too many variables for exhaustive enumeration")

	// ErrBadNumVars indicates a negative variable count.
	ErrBadNumVars = errors.New("solve: number of variables must be ≥ 0")
)

// Sample is one candidate assignment with its energy (offset included).
// Occurrences counts how many raw reads produced this exact assignment
// after aggregation.
type Sample struct {
	Bits        []int
	Energy      float64
	Occurrences int
}

// SampleSet is an energy-ranked list of candidate assignments.
type SampleSet struct {
	Samples []Sample
}

// Sampler is the external solver collaborator: given a coefficient map, the
// energy offset, and the total variable count, return candidate low-energy
// assignments ranked by energy. Implementations decide how many samples to
// return and how to break ties.
type Sampler interface {
	Sample(m coeff.Map, offset float64, numVars int) (SampleSet, error)
}
