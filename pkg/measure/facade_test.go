package measure

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The facade tests run against the process-wide default registry, so each
// one uses its own names and cleans up after itself.

func TestFacade_RecordAndRead(t *testing.T) {
	defer ClearName[FunctionCall]("facade_calls")

	Record("facade_calls", FunctionCall{})
	Record("facade_calls", FunctionCall{})

	got, err := Read[FunctionCall]("facade_calls")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestFacade_TypeInference(t *testing.T) {
	defer ClearName[time.Duration]("facade_latency")

	// The value type selects the store; no explicit instantiation needed
	// on the write side.
	Record("facade_latency", 12*time.Millisecond)

	got, err := Read[time.Duration]("facade_latency")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 12*time.Millisecond, got[0].Data)
}

func TestFacade_ReadRange(t *testing.T) {
	defer ClearName[PeriodicEvent]("facade_ticks")

	Record("facade_ticks", PeriodicEvent{})
	time.Sleep(2 * time.Millisecond)
	cut := time.Now()
	time.Sleep(2 * time.Millisecond)
	Record("facade_ticks", PeriodicEvent{})

	got, err := ReadRange[PeriodicEvent]("facade_ticks", cut, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFacade_SetCapacity(t *testing.T) {
	defer ClearName[int]("facade_capped")

	SetCapacity[int]("facade_capped", 2)
	defer SetCapacity[int]("facade_capped", Infinite)

	for i := 1; i <= 4; i++ {
		Record("facade_capped", i)
	}

	got, err := Read[int]("facade_capped")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, datapoints(got))
}

func TestFacade_PerGoroutine(t *testing.T) {
	name := "facade_tracked"
	defer ClearName[FunctionCall](name)

	require.False(t, IsTrackedPerGoroutine[FunctionCall](name))
	TrackPerGoroutine[FunctionCall](name)
	require.True(t, IsTrackedPerGoroutine[FunctionCall](name))

	const workers = 8
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Record(name, FunctionCall{})
			Record(name, FunctionCall{})
		}()
	}
	wg.Wait()

	perG, err := ReadForAllGoroutines[FunctionCall](name)
	require.NoError(t, err)
	require.Len(t, perG, workers)
	for _, ms := range perG {
		require.Len(t, ms, 2)
	}

	_, err = Read[FunctionCall](name)
	require.ErrorIs(t, err, ErrTracked)
}

func TestFacade_ClearIsTypeScoped(t *testing.T) {
	defer ClearName[int]("facade_mixed")
	defer ClearName[time.Duration]("facade_mixed")

	Record("facade_mixed", 1)
	Record("facade_mixed", time.Second)

	Clear[int]()

	ints, err := Read[int]("facade_mixed")
	require.NoError(t, err)
	require.Empty(t, ints)

	durations, err := Read[time.Duration]("facade_mixed")
	require.NoError(t, err)
	require.Len(t, durations, 1, "clearing one type must not touch another")
}
