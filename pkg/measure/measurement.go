package measure

import "time"

// Measurement is a single timestamped data point. Measurements are
// immutable once recorded; reads hand out copies, never references into
// store-internal storage.
type Measurement[T any] struct {
	Timestamp time.Time `json:"timestamp"`
	Data      T         `json:"data"`
}

// FunctionCall marks that a function was invoked. The measurement carries
// no payload beyond its timestamp.
type FunctionCall struct{}

// PeriodicEvent marks one occurrence of a recurring event.
type PeriodicEvent struct{}
