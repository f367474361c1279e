package sampler

import (
	"context"
	"runtime"
	"time"

	"github.com/nicktill/tinymeasure/pkg/config"
	"github.com/nicktill/tinymeasure/pkg/measure"
	"github.com/nicktill/tinymeasure/pkg/memsize"
)

// Measurement names the sampler records under.
const (
	NameHeapAlloc  = "go_heap_alloc"
	NameSys        = "go_sys"
	NameRSS        = "process_rss"
	NameGoroutines = "go_goroutines"
	NameTick       = "sampler_tick"
)

// Config controls a Sampler. The zero value samples into the default
// registry at the default interval.
type Config struct {
	// Interval between samples. Defaults to config.DefaultSampleInterval.
	Interval time.Duration

	// Registry the samples are recorded into. Defaults to
	// measure.Default().
	Registry *measure.Registry
}

// Sampler records resource readings on a fixed interval.
type Sampler struct {
	interval time.Duration
	registry *measure.Registry
}

// New creates a sampler from cfg, applying defaults for zero fields.
func New(cfg Config) *Sampler {
	if cfg.Interval == 0 {
		cfg.Interval = config.DefaultSampleInterval
	}
	if cfg.Registry == nil {
		cfg.Registry = measure.Default()
	}
	return &Sampler{
		interval: cfg.Interval,
		registry: cfg.Registry,
	}
}

// Start samples immediately, then on every interval tick until ctx is
// cancelled. It blocks; run it in its own goroutine.
func (s *Sampler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sample()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sample()
		}
	}
}

// Sample records one reading of every supported resource.
func (s *Sampler) Sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	sizes := measure.StoreFor[memsize.Size](s.registry)
	sizes.Record(NameHeapAlloc, memsize.Size(m.HeapAlloc))
	sizes.Record(NameSys, memsize.Size(m.Sys))
	if rss, ok := readRSS(); ok {
		sizes.Record(NameRSS, rss)
	}

	measure.StoreFor[int](s.registry).Record(NameGoroutines, runtime.NumGoroutine())
	measure.StoreFor[measure.PeriodicEvent](s.registry).Record(NameTick, measure.PeriodicEvent{})
}
