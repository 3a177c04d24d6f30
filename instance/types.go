package instance

import "errors"

// Sentinel errors for instance loading.
var (
	// ErrNotFound indicates the referenced input file does not exist.
	ErrNotFound = errors.New("instance: file not found")

	// ErrBadInteger indicates a line that is not a valid integer.
	ErrBadInteger = errors.New("instance: invalid integer")

	// ErrMalformedEdge indicates a DIMACS edge line without exactly two
	// integer endpoints, or with identical endpoints.
	ErrMalformedEdge = errors.New("instance: malformed edge line")
)
