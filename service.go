package servicelocator

import "reflect"

// Service is the capability every registered value implements.
// OnRegister is called once the service is stored in a registry and
// OnDeregister once it has been removed.
type Service interface {
	OnRegister()
	OnDeregister()
}

// Key identifies a capability interface in the registry.
type Key string

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// KeyOf derives the registry key for capability type T.
// The key is the declared name of T itself, so two interfaces backed by the
// same concrete value still map to distinct keys.
func KeyOf[T any]() Key {
	t := reflect.TypeFor[T]()
	if name := t.Name(); name != "" {
		return Key(name)
	}
	return Key(t.String())
}

// ServiceInfo describes a registry entry for listing and debugging.
type ServiceInfo struct {
	Key  Key    `json:"key"`
	Type string `json:"type"`
}
