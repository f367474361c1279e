package measure

import "time"

// The package-level functions are the surface application code touches.
// Each resolves the store for its value type in the default registry and
// delegates; they hold no state of their own.

// Record timestamps value with the current time and appends it under
// name. The value type selects the store, so identical names under
// different types never collide.
func Record[T any](name string, value T) {
	StoreFor[T](Default()).Record(name, value)
}

// Read returns a chronological snapshot of the shared bucket for name.
// Fails with ErrTracked once the name is tracked per goroutine.
func Read[T any](name string) ([]Measurement[T], error) {
	return StoreFor[T](Default()).Read(name)
}

// ReadRange is Read restricted to begin <= timestamp <= end, inclusive.
// A zero begin means the epoch; a zero end means now.
func ReadRange[T any](name string, begin, end time.Time) ([]Measurement[T], error) {
	return StoreFor[T](Default()).ReadRange(name, begin, end)
}

// ReadForGoroutine returns the measurements the given goroutine recorded
// under name. Fails with ErrNotTracked while the name is not tracked per
// goroutine.
func ReadForGoroutine[T any](name string, gid GoroutineID) ([]Measurement[T], error) {
	return StoreFor[T](Default()).ReadForGoroutine(name, gid)
}

// ReadRangeForGoroutine is ReadForGoroutine restricted to the inclusive
// [begin, end] window.
func ReadRangeForGoroutine[T any](name string, gid GoroutineID, begin, end time.Time) ([]Measurement[T], error) {
	return StoreFor[T](Default()).ReadRangeForGoroutine(name, gid, begin, end)
}

// ReadForAllGoroutines snapshots every per-goroutine bucket under name.
// Fails with ErrNotTracked while the name is not tracked per goroutine.
func ReadForAllGoroutines[T any](name string) (map[GoroutineID][]Measurement[T], error) {
	return StoreFor[T](Default()).ReadForAllGoroutines(name)
}

// ReadRangeForAllGoroutines is ReadForAllGoroutines restricted to the
// inclusive [begin, end] window.
func ReadRangeForAllGoroutines[T any](name string, begin, end time.Time) (map[GoroutineID][]Measurement[T], error) {
	return StoreFor[T](Default()).ReadRangeForAllGoroutines(name, begin, end)
}

// SetCapacity bounds retention for name to capacity elements with FIFO
// eviction; Infinite restores unbounded retention.
func SetCapacity[T any](name string, capacity int) {
	StoreFor[T](Default()).SetCapacity(name, capacity)
}

// TrackPerGoroutine permanently switches name to per-goroutine tracking.
// Idempotent.
func TrackPerGoroutine[T any](name string) {
	StoreFor[T](Default()).TrackPerGoroutine(name)
}

// IsTrackedPerGoroutine reports whether name is tracked per goroutine.
func IsTrackedPerGoroutine[T any](name string) bool {
	return StoreFor[T](Default()).IsTrackedPerGoroutine(name)
}

// Clear drops every bucket of type T.
func Clear[T any]() {
	StoreFor[T](Default()).Clear()
}

// ClearName drops the buckets under name, across all goroutine scopes,
// for type T only.
func ClearName[T any](name string) {
	StoreFor[T](Default()).ClearName(name)
}
