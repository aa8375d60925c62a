package servicelocator

import "fmt"

// RegisterAs registers service under the key derived from capability type T.
func RegisterAs[T Service](r *Registry, service T) error {
	return r.Register(KeyOf[T](), service)
}

// Resolve retrieves the service registered under capability type T.
// Lookup is by T's key only: a value registered as another capability is
// not found even when it happens to implement T.
func Resolve[T Service](r *Registry) (T, error) {
	var zero T
	key := KeyOf[T]()

	service, err := r.Get(key)
	if err != nil {
		return zero, err
	}

	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrServiceWrongType, key, service)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics when the service is unavailable.
// Intended for bootstrap code that cannot continue without the dependency.
func MustResolve[T Service](r *Registry) T {
	service, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return service
}

// UnregisterAs removes the service registered under capability type T.
func UnregisterAs[T Service](r *Registry) {
	r.Unregister(KeyOf[T]())
}
