// Package servicelocator provides a name-keyed registry for services that
// decouples consumers from the concrete implementations they depend on.
//
// Bootstrap code creates the process-wide registry once with Initialize and
// registers services as they start:
//
//	reg := servicelocator.Initialize(servicelocator.WithLogger(logger))
//	_ = servicelocator.RegisterAs[AudioService](reg, audio)
//
// Components should be handed the *Registry they need. Tests build their
// own independent instances with New.
package servicelocator

import "sync"

var (
	currentMu sync.RWMutex
	current   *Registry
)

// Initialize (re)creates the process-wide registry and returns it.
// Any registrations held by the previous instance are discarded.
func Initialize(opts ...Option) *Registry {
	r := New(opts...)

	currentMu.Lock()
	previous := current
	current = r
	currentMu.Unlock()

	r.logger.Info("Service locator initialized", "replaced", previous != nil)
	r.emit(EventTypeRegistryInitialized, map[string]any{"replaced": previous != nil})
	return r
}

// Current returns the process-wide registry, or nil before Initialize has
// been called. Registry methods tolerate a nil receiver and report
// ErrNotInitialized where an error can be returned.
func Current() *Registry {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}
