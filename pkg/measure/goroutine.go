package measure

import (
	"runtime"
	"strconv"
	"strings"
)

// GoroutineID identifies the goroutine that recorded a measurement when a
// name is tracked per goroutine.
type GoroutineID uint64

// AllGoroutines is the bucket scope for names that are not tracked per
// goroutine. The runtime numbers goroutines from 1, so 0 is free to act
// as the sentinel.
const AllGoroutines GoroutineID = 0

// CurrentGoroutineID returns the runtime id of the calling goroutine,
// parsed from the stack header ("goroutine 123 [running]:"). The runtime
// does not expose the id directly; this is the conventional workaround
// and is only used to partition buckets, never for scheduling decisions.
func CurrentGoroutineID() GoroutineID {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(header, ' '); i > 0 {
		if id, err := strconv.ParseUint(header[:i], 10, 64); err == nil {
			return GoroutineID(id)
		}
	}
	return AllGoroutines
}

// String renders the id for log lines; the sentinel prints as "all".
func (g GoroutineID) String() string {
	if g == AllGoroutines {
		return "all"
	}
	return strconv.FormatUint(uint64(g), 10)
}
