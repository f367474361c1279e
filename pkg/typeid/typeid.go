// Package typeid assigns stable process-lifetime identifiers to Go types.
//
// The first time a type is seen it receives the next value of a global
// counter; every later lookup returns the same id. Ids are intended for
// diagnostics and logging (stable labels for per-type stores), never for
// dispatch.
package typeid

import (
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	next uint64
	ids  sync.Map // reflect.Type -> uint64
)

// ID returns the identifier for type T, assigning the next free one on
// first use. Safe for concurrent use; ids start at 1 and never repeat
// within a process.
func ID[T any]() uint64 {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := ids.Load(t); ok {
		return id.(uint64)
	}
	// Two goroutines may race here for the same type; LoadOrStore keeps
	// the first id and the loser's counter value is simply skipped.
	id, _ := ids.LoadOrStore(t, atomic.AddUint64(&next, 1))
	return id.(uint64)
}

// Name returns the reflect name of type T, matching what ID keys on.
// Anonymous types yield their structural description.
func Name[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
