package measure

import (
	"reflect"
	"sync"

	"github.com/nicktill/tinymeasure/pkg/typeid"
)

// Registry owns one Store per measurement value type, created lazily on
// first use. The package-level functions delegate to Default; tests build
// their own registries for isolation.
type Registry struct {
	mu     sync.Mutex
	stores map[reflect.Type]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[reflect.Type]any)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// functions. It lives for the process lifetime.
func Default() *Registry {
	return defaultRegistry
}

// StoreFor resolves the store for value type T in r, creating it on first
// use. The store lives as long as the registry. Dispatch is purely by Go
// type; the typeid assigned here is diagnostic only.
func StoreFor[T any](r *Registry) *Store[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.stores[t]; ok {
		return existing.(*Store[T])
	}
	typeid.ID[T]()
	store := NewStore[T]()
	r.stores[t] = store
	return store
}

// Types returns the reflect descriptions of every value type that has a
// store in r, for diagnostics.
func (r *Registry) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.stores))
	for t := range r.stores {
		out = append(out, t.String())
	}
	return out
}
