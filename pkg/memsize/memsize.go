// Package memsize provides a value type for physical memory sizes.
//
// Size is a plain byte count with unit constants for the usual decimal and
// binary multiples, so call sites read naturally:
//
//	measure.Record("heap", 64*memsize.MiB)
//
// Formatting and parsing round-trip through go-humanize.
package memsize

import (
	"github.com/dustin/go-humanize"
)

// Size is an amount of memory in bytes.
type Size uint64

// Unit multiples. KB/MB/GB are decimal (powers of 1000), KiB/MiB/GiB are
// binary (powers of 1024).
const (
	B Size = 1

	KB Size = 1e3
	MB Size = 1e6
	GB Size = 1e9

	KiB Size = 1 << 10
	MiB Size = 1 << 20
	GiB Size = 1 << 30
)

// Bytes returns the size as a raw byte count.
func (s Size) Bytes() uint64 { return uint64(s) }

// String formats the size with binary unit suffixes, e.g. "64 MiB".
func (s Size) String() string { return humanize.IBytes(uint64(s)) }

// Parse converts a human-readable size like "42 MiB" or "42MB" into a
// Size.
func Parse(text string) (Size, error) {
	n, err := humanize.ParseBytes(text)
	if err != nil {
		return 0, err
	}
	return Size(n), nil
}
