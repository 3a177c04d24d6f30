package knapsack

import "errors"

// Sentinel errors for knapsack loading and compilation.
var (
	// ErrEmptyInput indicates an input file or list with no values.
	ErrEmptyInput = errors.New("knapsack: empty input")

	// ErrLengthMismatch indicates weights and profits of different length.
	ErrLengthMismatch = errors.New("knapsack: weights and profits have different length")

	// ErrNonPositiveWeight indicates a weight ≤ 0.
	ErrNonPositiveWeight = errors.New("knapsack: all weights must be positive integers")

	// ErrNegativeCapacity indicates a capacity < 0.
	ErrNegativeCapacity = errors.New("knapsack: capacity cannot be negative")

	// ErrInfeasibleCapacity indicates a capacity below the smallest weight:
	// no item can ever be selected.
	ErrInfeasibleCapacity = errors.New("knapsack: capacity is smaller than the minimum weight")

	// ErrBadCapacity indicates a capacity < 1 fed to a compiler.
	ErrBadCapacity = errors.New("knapsack: capacity must be a positive integer")
)

// Options configures both knapsack compilers.
//
// Alpha – penalty coefficient of the capacity constraint (must be > 0).
// Beta  – coefficient of the profit objective (must be > 0).
//
// For BuildAux pick Alpha > max(profit)·Beta so that no profit gain can pay
// for a violated capacity bound.
type Options struct {
	Alpha float64
	Beta  float64
}

// Option is a functional option for configuring Build and BuildAux.
type Option func(*Options)

// DefaultOptions returns Alpha=1, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 1, Beta: 1}
}

// WithAlpha sets the capacity penalty coefficient. Panics if alpha ≤ 0.
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("knapsack: WithAlpha requires alpha > 0")
	}

	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the profit objective coefficient. Panics if beta ≤ 0.
func WithBeta(beta float64) Option {
	if beta <= 0 {
		panic("knapsack: WithBeta requires beta > 0")
	}

	return func(o *Options) { o.Beta = beta }
}
