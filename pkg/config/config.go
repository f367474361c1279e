package config

import "time"

// Sampler defaults
const (
	DefaultSampleInterval = 15 * time.Second
)

// Suggested retention bounds for high-frequency instrumentation. Callers
// opt in per name via measure.SetCapacity; nothing is bounded by default.
const (
	DefaultTimingCapacity  = 4096
	DefaultEventCapacity   = 1024
	DefaultReadingCapacity = 512
)
