package queens

import "errors"

// Sentinel errors returned by AttackGraph and Build.
var (
	// ErrNilGraph indicates a nil conflict graph was passed to Build.
	ErrNilGraph = errors.New("queens: graph is nil")

	// ErrBadBoardSize indicates a non-positive board size.
	ErrBadBoardSize = errors.New("queens: board size must be ≥ 1")
)

// Square is a board position in row/column coordinates.
type Square struct {
	Row, Col int
}

// Options configures the N-queens compiler.
//
// Alpha – penalty coefficient shared by the count and attack constraints
// (must be > 0); the original formulation uses a single coefficient.
type Options struct {
	Alpha float64
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Alpha=1.
func DefaultOptions() Options {
	return Options{Alpha: 1}
}

// WithAlpha sets the penalty coefficient. Panics if alpha ≤ 0.
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("queens: WithAlpha requires alpha > 0")
	}

	return func(o *Options) { o.Alpha = alpha }
}
