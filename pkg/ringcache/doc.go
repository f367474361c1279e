/*
Package ringcache provides a fixed-capacity FIFO cache.

Elements are inserted in a circular fashion: while the cache has room,
inserts append; once it is full, each insert overwrites the oldest element.
The cache is indexable by age (0 = most recently inserted) and iterable
from youngest to oldest.

	c := ringcache.New[int](4)
	c.Insert(1)
	c.Insert(2)
	v, _ := c.At(0) // 2, the youngest

A cache with capacity 0 is permanently full and silently drops every
insert. The cache is not safe for concurrent use; callers that share one
must provide their own locking.
*/
package ringcache
