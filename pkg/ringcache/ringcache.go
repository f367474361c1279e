package ringcache

import (
	"errors"
	"iter"
)

// ErrOutOfRange is returned by At when the requested age is not backed by
// an element.
var ErrOutOfRange = errors.New("ringcache: age out of range")

// Cache is a fixed-capacity cache with FIFO eviction. Inserts append until
// the cache is full, then overwrite the oldest element. Age 0 is the most
// recently inserted element.
type Cache[T any] struct {
	storage  []T
	capacity int
	head     int // next write position
}

// New creates a cache that holds at most capacity elements. The backing
// array is allocated once; inserting never reallocates.
func New[T any](capacity int) *Cache[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[T]{
		storage:  make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Insert adds an element to the cache. If the cache is full the oldest
// element is overwritten. Inserting into a zero-capacity cache is a no-op.
func (c *Cache[T]) Insert(value T) {
	if c.capacity == 0 {
		return
	}
	if c.IsFull() {
		c.storage[c.head] = value
	} else {
		c.storage = append(c.storage, value)
	}
	c.head = (c.head + 1) % c.capacity
}

// Len returns the number of elements currently in the cache.
func (c *Cache[T]) Len() int { return len(c.storage) }

// Capacity returns the maximum number of elements the cache can hold.
func (c *Cache[T]) Capacity() int { return c.capacity }

// IsFull reports whether the cache holds as many elements as its capacity.
// A zero-capacity cache is always full.
func (c *Cache[T]) IsFull() bool { return len(c.storage) == c.capacity }

// Clear removes all elements. Capacity is unchanged.
func (c *Cache[T]) Clear() {
	c.storage = c.storage[:0]
	c.head = 0
}

// At returns the element with the given age. Age 0 is the youngest
// element, Len()-1 the oldest. Returns ErrOutOfRange when age does not
// address an element.
func (c *Cache[T]) At(age int) (T, error) {
	if age < 0 || age >= len(c.storage) {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.storage[c.indexFromAge(age)], nil
}

// Youngest returns the most recently inserted element. The second return
// value is false when the cache is empty.
func (c *Cache[T]) Youngest() (T, bool) {
	if len(c.storage) == 0 {
		var zero T
		return zero, false
	}
	return c.storage[c.youngestIndex()], true
}

// Oldest returns the element that will be evicted next. The second return
// value is false when the cache is empty.
func (c *Cache[T]) Oldest() (T, bool) {
	if len(c.storage) == 0 {
		var zero T
		return zero, false
	}
	return c.storage[c.oldestIndex()], true
}

// All iterates the cache from youngest to oldest. The iterator yields
// pointers into the cache, so assigning through them updates the stored
// element in place. The sequence is restartable; each range starts over
// from the youngest element. Inserting while iterating is not supported.
func (c *Cache[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for age := 0; age < len(c.storage); age++ {
			if !yield(&c.storage[c.indexFromAge(age)]) {
				return
			}
		}
	}
}

// youngestIndex is only meaningful when the cache is non-empty. The head
// is the next write position, so the youngest element sits one slot back,
// wrapping by capacity.
func (c *Cache[T]) youngestIndex() int {
	return (c.capacity + c.head - 1) % c.capacity
}

// oldestIndex wraps by the current length, not capacity: while the cache
// is filling, the oldest element is always slot 0.
func (c *Cache[T]) oldestIndex() int {
	return (c.youngestIndex() + 1) % len(c.storage)
}

func (c *Cache[T]) indexFromAge(age int) int {
	return (c.capacity + c.head - 1 - age) % c.capacity
}
