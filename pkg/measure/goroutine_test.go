package measure

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentGoroutineID_Stable(t *testing.T) {
	first := CurrentGoroutineID()
	require.NotEqual(t, AllGoroutines, first, "a live goroutine never gets the sentinel id")
	require.Equal(t, first, CurrentGoroutineID())
}

func TestCurrentGoroutineID_DistinctPerGoroutine(t *testing.T) {
	const n = 8
	ids := make([]GoroutineID, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			ids[slot] = CurrentGoroutineID()
		}(i)
	}
	wg.Wait()

	seen := make(map[GoroutineID]bool)
	for _, id := range ids {
		require.NotEqual(t, AllGoroutines, id)
		require.False(t, seen[id], "goroutine ids must be unique")
		seen[id] = true
	}
}

func TestGoroutineID_String(t *testing.T) {
	require.Equal(t, "all", AllGoroutines.String())
	require.Equal(t, "42", GoroutineID(42).String())
}
