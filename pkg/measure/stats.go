package measure

import (
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/nicktill/tinymeasure/pkg/typeid"
)

// Stats describes the current contents of one store, for diagnostics and
// capacity monitoring. TypeID and Type identify the measurement value
// type; they are informational only and never used for dispatch.
type Stats struct {
	TypeID uint64
	Type   string

	// Buckets is the number of (name, scope) pairs currently holding data.
	Buckets int

	// Series is the number of unique series fingerprints (see SeriesID).
	Series int

	// TotalMeasurements counts retained measurements across all buckets.
	TotalMeasurements uint64

	// Oldest and Newest bound the retained timestamps. Zero when the
	// store is empty.
	Oldest time.Time
	Newest time.Time
}

// SeriesID fingerprints one (name, scope) series as a 64-bit hash, the
// same way persistent metric stores key series on a hash of their
// identity. Useful as a compact stable label in logs and dashboards.
func SeriesID(name string, gid GoroutineID) uint64 {
	var d xxhash.Digest
	d.Reset()
	_, _ = d.WriteString(name)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(gid))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// Stats returns a point-in-time summary of the store.
func (s *Store[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TypeID: typeid.ID[T](),
		Type:   typeid.Name[T](),
	}

	seriesSet := make(map[uint64]bool)
	for key, bucket := range s.buckets {
		stats.Buckets++
		seriesSet[SeriesID(key.name, key.gid)] = true

		n := bucket.len()
		if n == 0 {
			continue
		}
		stats.TotalMeasurements += uint64(n)

		// Buckets are chronological, so the bounds are the ends.
		snap := bucket.snapshot()
		if stats.Oldest.IsZero() || snap[0].Timestamp.Before(stats.Oldest) {
			stats.Oldest = snap[0].Timestamp
		}
		if snap[n-1].Timestamp.After(stats.Newest) {
			stats.Newest = snap[n-1].Timestamp
		}
	}
	stats.Series = len(seriesSet)

	return stats
}
