// Command example instruments a small simulated workload and prints the
// recorded measurements back.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/nicktill/tinymeasure/pkg/measure"
	"github.com/nicktill/tinymeasure/pkg/memsize"
	"github.com/nicktill/tinymeasure/pkg/sampler"
)

func handleRequest() {
	defer measure.StartTimer("handle_request").Stop()
	measure.Record("handle_request", measure.FunctionCall{})

	// Simulate some work
	time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
}

func worker(requests int) {
	for i := 0; i < requests; i++ {
		measure.Record("worker_iteration", measure.FunctionCall{})
		handleRequest()
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keep only a recent window of resource readings.
	measure.SetCapacity[memsize.Size](sampler.NameHeapAlloc, 64)
	s := sampler.New(sampler.Config{Interval: 100 * time.Millisecond})
	go s.Start(ctx)

	// Track the worker loop per goroutine.
	measure.TrackPerGoroutine[measure.FunctionCall]("worker_iteration")

	start := time.Now()
	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			worker(25)
			done <- struct{}{}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}

	// Function calls, shared across goroutines.
	calls, err := measure.Read[measure.FunctionCall]("handle_request")
	if err != nil {
		log.Fatalf("Failed to read calls: %v", err)
	}
	fmt.Printf("handle_request was called %d times\n", len(calls))

	// Timings recorded by the scope guard, filtered to the run window.
	timings, err := measure.ReadRange[time.Duration]("handle_request", start, time.Time{})
	if err != nil {
		log.Fatalf("Failed to read timings: %v", err)
	}
	var total time.Duration
	for _, m := range timings {
		total += m.Data
	}
	if len(timings) > 0 {
		fmt.Printf("average handling time: %v\n", total/time.Duration(len(timings)))
	}

	// Per-goroutine iteration counts.
	perG, err := measure.ReadForAllGoroutines[measure.FunctionCall]("worker_iteration")
	if err != nil {
		log.Fatalf("Failed to read worker iterations: %v", err)
	}
	for gid, ms := range perG {
		fmt.Printf("goroutine %v ran %d iterations\n", gid, len(ms))
	}

	// Latest resource reading from the sampler.
	heap, err := measure.Read[memsize.Size](sampler.NameHeapAlloc)
	if err != nil {
		log.Fatalf("Failed to read heap samples: %v", err)
	}
	if len(heap) > 0 {
		fmt.Printf("heap: %s across %d samples\n", heap[len(heap)-1].Data, len(heap))
	}
}
