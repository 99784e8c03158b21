// SPDX-License-Identifier: MIT

// Package module: functional configuration for New and NewRegistry.
//
// Defaults:
//   - descriptors are cached (DefaultCached) in DefaultRegistry();
//   - registries log through a charmbracelet logger at warn level on stderr.
//
// WithX constructors panic on nonsensical values (programmer error).
package module

import (
	"os"

	"github.com/charmbracelet/log"
)

// DefaultCached controls whether New consults a Registry.
const DefaultCached = true

// Option configures New.
type Option func(*options)

type options struct {
	cached   bool
	registry *Registry
}

// WithCache enables or disables descriptor caching for one New call.
// With caching off, every call returns a fresh, distinct descriptor.
func WithCache(enabled bool) Option {
	return func(o *options) { o.cached = enabled }
}

// WithRegistry routes caching through reg instead of DefaultRegistry().
// Panics if reg is nil.
func WithRegistry(reg *Registry) Option {
	if reg == nil {
		panic("module: WithRegistry(nil)")
	}

	return func(o *options) { o.registry = reg }
}

// gatherOptions applies opts over the defaults. The default registry is only
// materialized when caching is actually used.
func gatherOptions(opts []Option) options {
	o := options{cached: DefaultCached}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.cached && o.registry == nil {
		o.registry = DefaultRegistry()
	}

	return o
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*Registry)

// WithLogger sets the registry logger. Panics if l is nil.
func WithLogger(l *log.Logger) RegistryOption {
	if l == nil {
		panic("module: WithLogger(nil)")
	}

	return func(r *Registry) { r.logger = l }
}

// defaultLogger is used by registries without WithLogger.
func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "lvlalg",
		Level:  log.WarnLevel,
	})
}
