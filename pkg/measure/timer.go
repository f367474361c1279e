package measure

import (
	"sync"
	"time"
)

// Timer measures the time between its creation and Stop, recording the
// elapsed time.Duration under its name. Stop records exactly once no
// matter how often it is called, which makes the deferred form safe on
// every exit path:
//
//	func handle() {
//		defer measure.StartTimer("handle").Stop()
//		// ...
//	}
type Timer struct {
	registry *Registry
	name     string
	start    time.Time
	once     sync.Once
}

// StartTimer starts a timer recording into the default registry.
func StartTimer(name string) *Timer {
	return StartTimerIn(Default(), name)
}

// StartTimerIn starts a timer recording into the given registry.
func StartTimerIn(r *Registry, name string) *Timer {
	return &Timer{
		registry: r,
		name:     name,
		start:    time.Now(),
	}
}

// Stop records the elapsed time since the timer started. Only the first
// call records; later calls are no-ops.
func (t *Timer) Stop() {
	t.once.Do(func() {
		StoreFor[time.Duration](t.registry).Record(t.name, time.Since(t.start))
	})
}

// MeasureFunc starts a timer and returns its Stop, for one-line deferred
// timing of a whole function:
//
//	defer measure.MeasureFunc("my_operation")()
func MeasureFunc(name string) func() {
	return StartTimer(name).Stop
}
