package vertexcover

import "errors"

// ErrNilGraph indicates a nil *graph.Graph was passed to Build.
var ErrNilGraph = errors.New("vertexcover: graph is nil")

// Options configures the vertex cover compiler.
//
// Alpha – penalty per uncovered edge (must be > 0).
// Beta  – cost per selected node, the minimization objective (must be > 0).
//
// Beta < Alpha is required for valid solutions; the defaults follow the
// original formulation (Alpha=2, Beta=1).
type Options struct {
	Alpha float64
	Beta  float64
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Alpha=2, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 2, Beta: 1}
}

// WithAlpha sets the coverage penalty coefficient. Panics if alpha ≤ 0.
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("vertexcover: WithAlpha requires alpha > 0")
	}

	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the per-node objective coefficient. Panics if beta ≤ 0.
func WithBeta(beta float64) Option {
	if beta <= 0 {
		panic("vertexcover: WithBeta requires beta > 0")
	}

	return func(o *Options) { o.Beta = beta }
}
