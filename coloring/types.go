package coloring

import "errors"

// Sentinel errors returned by Build and Decode.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Build.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrBadColors indicates a non-positive number of colors.
	ErrBadColors = errors.New("coloring: number of colors must be ≥ 1")

	// ErrNotOneHot indicates an assignment where some node does not have
	// exactly one color selected.
	ErrNotOneHot = errors.New("coloring: node does not have exactly one color")
)

// NodeColor pairs a node ID with its assigned color slot.
type NodeColor struct {
	Node  int
	Color int
}

// Options configures the coloring compiler.
//
// Alpha – penalty coefficient of the one-color-per-node constraint (> 0).
// Beta  – penalty per same-colored adjacent pair (> 0).
type Options struct {
	Alpha float64
	Beta  float64
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Alpha=1, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 1, Beta: 1}
}

// WithAlpha sets the one-hot penalty coefficient. Panics if alpha ≤ 0.
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("coloring: WithAlpha requires alpha > 0")
	}

	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the adjacency penalty coefficient. Panics if beta ≤ 0.
func WithBeta(beta float64) Option {
	if beta <= 0 {
		panic("coloring: WithBeta requires beta > 0")
	}

	return func(o *Options) { o.Beta = beta }
}
