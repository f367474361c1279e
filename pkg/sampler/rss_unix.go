//go:build unix

package sampler

import (
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/nicktill/tinymeasure/pkg/memsize"
)

// readRSS returns the peak resident set size of the process.
func readRSS() (memsize.Size, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}

	size := memsize.Size(ru.Maxrss)
	// Linux reports Maxrss in kilobytes, Darwin in bytes.
	if runtime.GOOS != "darwin" {
		size *= memsize.KiB
	}
	return size, true
}
