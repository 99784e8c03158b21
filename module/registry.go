// SPDX-License-Identifier: MIT

package module

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvlalg/ring"
)

// Registry caches free-module descriptors keyed by (ring identity, rank).
//
// A Registry is safe for concurrent use: racing lookups for the same key
// observe exactly one descriptor. Entries live until Clear is called.
// Create registries with NewRegistry; the zero value is not usable.
type Registry struct {
	mu      sync.Mutex
	entries map[registryKey]any // values are *FreeModule[T] for the key's ring type
	logger  *log.Logger
}

// registryKey identifies a descriptor. ring holds the ring.Ring[T] interface
// value, so keys of different element types never collide.
type registryKey struct {
	ring any
	rank int
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by New unless
// WithRegistry or WithCache(false) is given.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{entries: make(map[registryKey]any)}
	for _, fn := range opts {
		if fn != nil {
			fn(r)
		}
	}
	if r.logger == nil {
		r.logger = defaultLogger()
	}

	return r
}

// Len returns the number of cached descriptors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Clear drops every cached descriptor. Descriptors already handed out stay
// valid; later New calls allocate fresh ones.
func (r *Registry) Clear() {
	r.mu.Lock()
	n := len(r.entries)
	r.entries = make(map[registryKey]any)
	r.mu.Unlock()

	r.logger.Debug("registry cleared", "dropped", n)
}

// lookupOrCreate is the atomic get-or-insert behind New. rg must be
// comparable; New checks that before any lookup.
func lookupOrCreate[T ring.Element[T]](r *Registry, rg ring.Ring[T], rank int) *FreeModule[T] {
	key := registryKey{ring: rg, rank: rank}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[key]; ok {
		if fm, ok := v.(*FreeModule[T]); ok {
			return fm
		}
	}
	fm := newFreeModule(rg, rank)
	r.entries[key] = fm
	r.logger.Debug("descriptor created", "ring", rg.String(), "rank", rank, "vector_space", fm.vectorSpace)

	return fm
}
