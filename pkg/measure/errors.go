package measure

import "errors"

// Mode-mismatch errors. A name is either shared across goroutines or
// tracked per goroutine; using the accessor for the other mode fails and
// the caller is expected to switch to the matching accessor.
var (
	// ErrTracked is returned by the shared-bucket accessors when the name
	// has been switched to per-goroutine tracking.
	ErrTracked = errors.New("name is tracked per goroutine")

	// ErrNotTracked is returned by the per-goroutine accessors when the
	// name has not been switched to per-goroutine tracking.
	ErrNotTracked = errors.New("name is not tracked per goroutine")
)
