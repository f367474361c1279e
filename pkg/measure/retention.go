package measure

import (
	"math"
	"time"

	"github.com/nicktill/tinymeasure/pkg/ringcache"
)

// Infinite configures a name for unbounded retention. It is the default
// for every name that has not been given an explicit capacity.
const Infinite = math.MaxInt

// retention is one bucket's storage: an append-only slice while the
// bucket is unbounded, a FIFO ring once a capacity is configured. Exactly
// one of the two representations is active; ring == nil means unbounded.
// Elements are kept in chronological order in both representations.
type retention[T any] struct {
	seq  []Measurement[T]
	ring *ringcache.Cache[Measurement[T]]
}

func newRetention[T any](capacity int) *retention[T] {
	r := &retention[T]{}
	if capacity != Infinite {
		r.ring = ringcache.New[Measurement[T]](capacity)
	}
	return r
}

func (r *retention[T]) insert(m Measurement[T]) {
	if r.ring != nil {
		r.ring.Insert(m)
		return
	}
	r.seq = append(r.seq, m)
}

func (r *retention[T]) len() int {
	if r.ring != nil {
		return r.ring.Len()
	}
	return len(r.seq)
}

// setCapacity converts the bucket between its two representations,
// migrating contents. Shrinking drops the oldest excess immediately;
// Infinite converts back to unbounded, keeping whatever survived.
func (r *retention[T]) setCapacity(capacity int) {
	contents := r.snapshot()
	if capacity == Infinite {
		r.ring = nil
		r.seq = contents
		return
	}
	r.seq = nil
	r.ring = ringcache.New[Measurement[T]](capacity)
	for _, m := range contents {
		// Chronological re-insertion; FIFO eviction keeps the newest
		// `capacity` elements.
		r.ring.Insert(m)
	}
}

// snapshot returns an owned copy of the contents in chronological order.
func (r *retention[T]) snapshot() []Measurement[T] {
	if r.ring == nil {
		out := make([]Measurement[T], len(r.seq))
		copy(out, r.seq)
		return out
	}
	out := make([]Measurement[T], 0, r.ring.Len())
	for age := r.ring.Len() - 1; age >= 0; age-- {
		m, err := r.ring.At(age)
		if err != nil {
			break // unreachable: age stays within occupancy
		}
		out = append(out, m)
	}
	return out
}

// snapshotRange is snapshot filtered to begin <= timestamp <= end,
// inclusive on both ends.
func (r *retention[T]) snapshotRange(begin, end time.Time) []Measurement[T] {
	out := make([]Measurement[T], 0)
	for _, m := range r.snapshot() {
		if m.Timestamp.Before(begin) || m.Timestamp.After(end) {
			continue
		}
		out = append(out, m)
	}
	return out
}
