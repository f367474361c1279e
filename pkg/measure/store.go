package measure

import (
	"fmt"
	"sync"
	"time"
)

// Store is the per-type registry of named measurement history. One Store
// exists per measurement value type, owned by a Registry; most callers go
// through the package-level functions instead of holding a Store directly.
//
// The bucket map and the tracking-flag map are independent critical
// sections. Record reads the flag under its own short lock, releases it,
// then takes the bucket lock to mutate. A Record racing with
// TrackPerGoroutine on the same name may therefore land in either scope,
// but every write is fully recorded in exactly one bucket.
type Store[T any] struct {
	mu      sync.Mutex
	buckets map[bucketKey]*retention[T]
	caps    map[string]int // configured capacities; absent means Infinite

	trackMu sync.Mutex
	tracked map[string]bool
}

// bucketKey addresses one retained sequence: a name plus the goroutine
// scope (AllGoroutines for the shared bucket).
type bucketKey struct {
	name string
	gid  GoroutineID
}

// NewStore creates an empty store. Application code normally obtains
// stores through StoreFor or the package-level functions; NewStore exists
// for tests that want full isolation.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		buckets: make(map[bucketKey]*retention[T]),
		caps:    make(map[string]int),
		tracked: make(map[string]bool),
	}
}

// Record timestamps value with the current time and appends it to the
// bucket for name, creating the bucket on first use. The scope is the
// shared bucket, or the calling goroutine's own bucket once the name is
// tracked per goroutine. Record always succeeds.
func (s *Store[T]) Record(name string, value T) {
	gid := AllGoroutines
	if s.IsTrackedPerGoroutine(name) {
		gid = CurrentGoroutineID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := bucketKey{name: name, gid: gid}
	bucket, ok := s.buckets[key]
	if !ok {
		bucket = newRetention[T](s.capacityForLocked(name))
		s.buckets[key] = bucket
	}
	// Timestamping under the lock keeps every bucket in non-decreasing
	// timestamp order even when writers race.
	bucket.insert(Measurement[T]{Timestamp: time.Now(), Data: value})
}

// Read returns a chronological copy of the shared bucket for name. A name
// that was never recorded yields an empty slice. Fails with ErrTracked
// once the name is tracked per goroutine.
func (s *Store[T]) Read(name string) ([]Measurement[T], error) {
	if s.IsTrackedPerGoroutine(name) {
		return nil, fmt.Errorf("read %q: %w", name, ErrTracked)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[bucketKey{name: name, gid: AllGoroutines}]
	if !ok {
		return []Measurement[T]{}, nil
	}
	return bucket.snapshot(), nil
}

// ReadRange is Read filtered to begin <= timestamp <= end, inclusive on
// both ends. A zero begin means the epoch; a zero end means now. An empty
// result is not an error.
func (s *Store[T]) ReadRange(name string, begin, end time.Time) ([]Measurement[T], error) {
	if s.IsTrackedPerGoroutine(name) {
		return nil, fmt.Errorf("read %q: %w", name, ErrTracked)
	}
	if end.IsZero() {
		end = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[bucketKey{name: name, gid: AllGoroutines}]
	if !ok {
		return []Measurement[T]{}, nil
	}
	return bucket.snapshotRange(begin, end), nil
}

// ReadForGoroutine returns a chronological copy of the bucket the given
// goroutine recorded under name. A goroutine that never recorded yields
// an empty slice. Fails with ErrNotTracked while the name is not tracked
// per goroutine.
func (s *Store[T]) ReadForGoroutine(name string, gid GoroutineID) ([]Measurement[T], error) {
	if !s.IsTrackedPerGoroutine(name) {
		return nil, fmt.Errorf("read %q: %w", name, ErrNotTracked)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[bucketKey{name: name, gid: gid}]
	if !ok {
		return []Measurement[T]{}, nil
	}
	return bucket.snapshot(), nil
}

// ReadRangeForGoroutine is ReadForGoroutine restricted to
// begin <= timestamp <= end, with the same zero-value defaults as
// ReadRange.
func (s *Store[T]) ReadRangeForGoroutine(name string, gid GoroutineID, begin, end time.Time) ([]Measurement[T], error) {
	if !s.IsTrackedPerGoroutine(name) {
		return nil, fmt.Errorf("read %q: %w", name, ErrNotTracked)
	}
	if end.IsZero() {
		end = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[bucketKey{name: name, gid: gid}]
	if !ok {
		return []Measurement[T]{}, nil
	}
	return bucket.snapshotRange(begin, end), nil
}

// ReadForAllGoroutines returns a snapshot of every per-goroutine bucket
// under name, keyed by goroutine id. Fails with ErrNotTracked while the
// name is not tracked per goroutine.
func (s *Store[T]) ReadForAllGoroutines(name string) (map[GoroutineID][]Measurement[T], error) {
	if !s.IsTrackedPerGoroutine(name) {
		return nil, fmt.Errorf("read %q: %w", name, ErrNotTracked)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[GoroutineID][]Measurement[T])
	for key, bucket := range s.buckets {
		if key.name != name || key.gid == AllGoroutines {
			continue
		}
		out[key.gid] = bucket.snapshot()
	}
	return out, nil
}

// ReadRangeForAllGoroutines is ReadForAllGoroutines restricted to
// begin <= timestamp <= end. Goroutines with no measurement in the window
// appear with an empty slice.
func (s *Store[T]) ReadRangeForAllGoroutines(name string, begin, end time.Time) (map[GoroutineID][]Measurement[T], error) {
	if !s.IsTrackedPerGoroutine(name) {
		return nil, fmt.Errorf("read %q: %w", name, ErrNotTracked)
	}
	if end.IsZero() {
		end = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[GoroutineID][]Measurement[T])
	for key, bucket := range s.buckets {
		if key.name != name || key.gid == AllGoroutines {
			continue
		}
		out[key.gid] = bucket.snapshotRange(begin, end)
	}
	return out, nil
}

// SetCapacity bounds retention for name to capacity elements with FIFO
// eviction, converting existing contents and dropping the oldest excess
// immediately. Passing Infinite converts back to unbounded retention.
// The capacity applies to every existing bucket under name, across all
// goroutine scopes, and to buckets created later.
func (s *Store[T]) SetCapacity(name string, capacity int) {
	if capacity < 0 {
		capacity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if capacity == Infinite {
		delete(s.caps, name)
	} else {
		s.caps[name] = capacity
	}
	for key, bucket := range s.buckets {
		if key.name == name {
			bucket.setCapacity(capacity)
		}
	}
}

// TrackPerGoroutine switches name into per-goroutine tracking. The switch
// is permanent and idempotent. Subsequent writes land in per-goroutine
// buckets; the shared bucket written before the switch is retained but no
// longer reachable through Read (mode mismatch).
func (s *Store[T]) TrackPerGoroutine(name string) {
	s.trackMu.Lock()
	defer s.trackMu.Unlock()
	s.tracked[name] = true
}

// IsTrackedPerGoroutine reports whether name is tracked per goroutine.
func (s *Store[T]) IsTrackedPerGoroutine(name string) bool {
	s.trackMu.Lock()
	defer s.trackMu.Unlock()
	return s.tracked[name]
}

// Clear drops every bucket in this store. Capacity configuration and
// tracking flags survive; they are per-name properties, not data.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets = make(map[bucketKey]*retention[T])
}

// ClearName drops the buckets under name across all goroutine scopes.
// Other names are unaffected.
func (s *Store[T]) ClearName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.buckets {
		if key.name == name {
			delete(s.buckets, key)
		}
	}
}

// capacityForLocked returns the configured capacity for name. Callers
// must hold mu.
func (s *Store[T]) capacityForLocked(name string) int {
	if capacity, ok := s.caps[name]; ok {
		return capacity
	}
	return Infinite
}
