package bipartite

import "errors"

var (
	// ErrCapacityExceeded is returned when a label maps to an index at or
	// beyond the capacity its partition was created with.
	ErrCapacityExceeded = errors.New("vertex index exceeds partition capacity")

	// ErrVertexNotFound is returned when an edge endpoint was never added.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrUnsupported marks operations the structure deliberately does not
	// implement. Hitting it is an integration bug in the caller.
	ErrUnsupported = errors.New("unsupported operation")
)
