//go:build !unix

package sampler

import "github.com/nicktill/tinymeasure/pkg/memsize"

// readRSS is unavailable here; the sampler simply skips the reading.
func readRSS() (memsize.Size, bool) {
	return 0, false
}
