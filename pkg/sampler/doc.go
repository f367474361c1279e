/*
Package sampler periodically records resource readings into a measure
registry.

Each tick records heap and total runtime memory as memsize.Size values,
the goroutine count, and on Unix the process resident set size. Downstream
consumers query the readings back through pkg/measure like any other
measurement:

	s := sampler.New(sampler.Config{Interval: 5 * time.Second})
	go s.Start(ctx)
	...
	heap, err := measure.ReadRange[memsize.Size](sampler.NameHeapAlloc, begin, end)

Bound the retained history with measure.SetCapacity on the sampler names
when only a recent window matters.
*/
package sampler
