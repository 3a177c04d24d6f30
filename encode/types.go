package encode

import "errors"

// Sentinel errors for the encoders.
var (
	// ErrBadCapacity indicates a non-positive capacity fed to the
	// inequality encoder; the slack-bit count ⌊log₂ capacity⌋ needs
	// capacity ≥ 1.
	ErrBadCapacity = errors.New("encode: capacity must be a positive integer")

	// ErrBadWeight indicates a non-positive item weight.
	ErrBadWeight = errors.New("encode: weights must be positive integers")
)
