/*
Package measure is an in-process instrumentation library: callers record
timestamped measurements under a caller-chosen name and query them back
later, optionally scoped to specific goroutines, optionally filtered by
time. It is a building block for autoscaling decisions, not the decision
logic itself.

# Recording and reading

Measurements are generic over their value type. Each value type gets its
own store, so the same name under different types never collides:

	measure.Record("handler", measure.FunctionCall{})
	measure.Record("handler", 12*time.Millisecond)

	calls, err := measure.Read[measure.FunctionCall]("handler")
	timings, err := measure.Read[time.Duration]("handler")

Reads return snapshot copies in chronological order; later writes, evictions
and clears never invalidate data already handed out. ReadRange filters to an
inclusive [begin, end] window; a zero begin means the epoch and a zero end
means now.

# Retention

By default a name retains every measurement. SetCapacity bounds it to a
fixed number of elements with FIFO eviction (oldest dropped first), backed
by pkg/ringcache. Passing measure.Infinite converts back to unbounded
retention, keeping whatever survived:

	measure.SetCapacity[measure.PeriodicEvent]("tick", 128)
	measure.SetCapacity[measure.PeriodicEvent]("tick", measure.Infinite)

# Per-goroutine tracking

TrackPerGoroutine switches a name into per-goroutine mode: every recording
goroutine gets its own bucket, created lazily on first write. The switch is
one-way and idempotent. Once tracked, the plain Read accessor fails with
ErrTracked and the goroutine accessors must be used; before the switch the
goroutine accessors fail with ErrNotTracked:

	measure.TrackPerGoroutine[measure.FunctionCall]("worker")
	perG, err := measure.ReadForAllGoroutines[measure.FunctionCall]("worker")

Recorded data outlives the goroutine that produced it.

# Timing helper

StartTimer returns a guard that records the elapsed time.Duration exactly
once when stopped, on any exit path:

	func handle() {
		defer measure.StartTimer("handle").Stop()
		// ...
	}

# Stores and registries

The package-level functions delegate to a process-wide Registry that owns
one Store per value type, created on first use. Tests that need isolation
build their own with NewRegistry and StoreFor:

	reg := measure.NewRegistry()
	st := measure.StoreFor[time.Duration](reg)
	st.Record("op", 5*time.Millisecond)

All operations are safe for concurrent use. The tracking flag and the
bucket map are separate critical sections, so a Record racing with
TrackPerGoroutine on the same name may land in either the shared or the
per-goroutine bucket; each write is always fully recorded in exactly one
of the two, never lost and never duplicated.
*/
package measure
