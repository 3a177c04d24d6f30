package clique

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Build.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrBadSize indicates a clique size outside [1, number of nodes].
	ErrBadSize = errors.New("clique: clique size out of range")
)

// Options configures the clique compiler.
//
// Alpha – penalty coefficient of the size constraint (must be > 0).
// Beta  – reward per selected edge (must be > 0).
//
// For a reliable feasibility margin pick Alpha > Beta·k.
type Options struct {
	Alpha float64
	Beta  float64
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns the original formulation defaults: Alpha=1, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 1, Beta: 1}
}

// WithAlpha sets the size-constraint penalty coefficient.
// Panics if alpha ≤ 0: a non-positive penalty cannot enforce anything.
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("clique: WithAlpha requires alpha > 0")
	}

	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the per-edge reward coefficient.
// Panics if beta ≤ 0.
func WithBeta(beta float64) Option {
	if beta <= 0 {
		panic("clique: WithBeta requires beta > 0")
	}

	return func(o *Options) { o.Beta = beta }
}
