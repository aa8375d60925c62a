package servicelocator

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
)

// Registry maps capability keys to service instances.
// At most one instance is held per key. The registry holds references only;
// constructing and tearing down the services is the caller's job.
//
// All methods are safe for concurrent use. Service hooks and observer
// notifications run after the internal lock is released, so a hook may call
// back into the registry. When the same key is registered and unregistered
// concurrently, the order of its OnRegister and OnDeregister calls is not
// guaranteed.
type Registry struct {
	mu       sync.RWMutex
	services map[Key]Service

	logger Logger
	config *Config

	observerMu sync.RWMutex
	observers  []*observerRegistration

	// errors from options, reported once the logger is known
	optionErrs []error
}

// New creates an independent registry with no entries.
func New(opts ...Option) *Registry {
	r := &Registry{
		services: make(map[Key]Service),
		config:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	for _, err := range r.optionErrs {
		r.logger.Error("Invalid registry option", "error", err)
	}
	r.optionErrs = nil
	return r
}

// Logger returns the logger diagnostics are written to.
func (r *Registry) Logger() Logger {
	return r.logger
}

// Reset drops every registration. Dropped services are not notified.
// Observers stay attached.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	dropped := len(r.services)
	r.services = make(map[Key]Service)
	r.mu.Unlock()

	r.logger.Debug("Service registry reset", "dropped", dropped)
	r.emit(EventTypeRegistryInitialized, map[string]any{"dropped": dropped})
}

// Register stores service under key and calls its OnRegister hook.
// Registering a key that is already present keeps the original service,
// logs a warning and returns nil. Only a nil service or an empty key is
// reported as an error.
func (r *Registry) Register(key Key, service Service) error {
	if r == nil {
		return ErrNotInitialized
	}
	if key == "" {
		return ErrEmptyKey
	}
	if isNilService(service) {
		return fmt.Errorf("%w: %s", ErrServiceNil, key)
	}

	r.mu.Lock()
	existing, exists := r.services[key]
	if !exists {
		r.services[key] = service
	}
	r.mu.Unlock()

	if exists {
		r.logger.Warn("Attempted to register service that is already registered",
			"key", key,
			"existing", typeName(existing),
			"rejected", typeName(service),
			"error", fmt.Errorf("%w: %s", ErrDuplicateRegistration, key))
		r.emit(EventTypeServiceDuplicate, map[string]any{"key": key, "type": typeName(service)})
		return nil
	}

	service.OnRegister()
	r.logger.Debug("Registered service", "key", key, "type", typeName(service))
	r.emit(EventTypeServiceRegistered, map[string]any{"key": key, "type": typeName(service)})
	return nil
}

// Get returns the service registered under key.
// A missing key is a programming error: it is logged and returned as an
// error wrapping ErrNotRegistered.
func (r *Registry) Get(key Key) (Service, error) {
	if r == nil {
		return nil, ErrNotInitialized
	}

	r.mu.RLock()
	service, exists := r.services[key]
	r.mu.RUnlock()

	if !exists {
		err := fmt.Errorf("%w: %s", ErrNotRegistered, key)
		r.logger.Error("Requested service is not registered", "key", key, "error", err)
		r.emit(EventTypeServiceMissing, map[string]any{"key": key})
		return nil, err
	}
	return service, nil
}

// Unregister removes the service under key and calls its OnDeregister hook.
// Unregistering an absent key logs a warning and leaves the registry as is.
func (r *Registry) Unregister(key Key) {
	if r == nil {
		return
	}

	r.mu.Lock()
	service, exists := r.services[key]
	if exists {
		delete(r.services, key)
	}
	r.mu.Unlock()

	if !exists {
		r.logger.Warn("Attempted to unregister service that is not registered",
			"key", key,
			"error", fmt.Errorf("%w: %s", ErrUnregisterMissing, key))
		return
	}

	service.OnDeregister()
	r.logger.Debug("Unregistered service", "key", key, "type", typeName(service))
	r.emit(EventTypeServiceUnregistered, map[string]any{"key": key, "type": typeName(service)})
}

// Has reports whether a service is registered under key.
func (r *Registry) Has(key Key) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.services[key]
	return exists
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []Key {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	keys := make([]Key, 0, len(r.services))
	for key := range r.services {
		keys = append(keys, key)
	}
	r.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Services describes every registered entry, sorted by key.
func (r *Registry) Services() []ServiceInfo {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	infos := make([]ServiceInfo, 0, len(r.services))
	for key, service := range r.services {
		infos = append(infos, ServiceInfo{Key: key, Type: typeName(service)})
	}
	r.mu.RUnlock()

	slices.SortFunc(infos, func(a, b ServiceInfo) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return infos
}

func (r *Registry) emit(eventType string, data map[string]any) {
	if r.config.DisableEvents || !r.hasObservers() {
		return
	}
	event := NewCloudEvent(eventType, r.config.EventSource, data, nil)
	if err := r.NotifyObservers(context.Background(), event); err != nil {
		r.logger.Debug("Failed to notify observers", "eventType", eventType, "error", err)
	}
}

// isNilService catches both a nil interface and a typed nil pointer.
func isNilService(service Service) bool {
	if service == nil {
		return true
	}
	v := reflect.ValueOf(service)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func typeName(v any) string {
	return reflect.TypeOf(v).String()
}
