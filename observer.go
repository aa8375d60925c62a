package servicelocator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Observer is notified of registry events.
// Events use the CloudEvents specification.
type Observer interface {
	// OnEvent is called synchronously for every matching event.
	// Returned errors are logged and never fail the registry operation.
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID returns a unique identifier for this observer.
	ObserverID() string
}

// ObserverInfo describes a registered observer.
type ObserverInfo struct {
	// ID is the unique identifier of the observer
	ID string `json:"id"`

	// EventTypes the observer is subscribed to. Empty means all events.
	EventTypes []string `json:"eventTypes"`

	RegisteredAt time.Time `json:"registeredAt"`
}

// Event types emitted by the registry, in reverse domain notation.
const (
	EventTypeRegistryInitialized = "com.servicelocator.registry.initialized"
	EventTypeServiceRegistered   = "com.servicelocator.service.registered"
	EventTypeServiceUnregistered = "com.servicelocator.service.unregistered"
	EventTypeServiceDuplicate    = "com.servicelocator.service.duplicate"
	EventTypeServiceMissing      = "com.servicelocator.service.missing"
)

type observerRegistration struct {
	observer     Observer
	eventTypes   map[string]struct{}
	registeredAt time.Time
}

func (o *observerRegistration) wants(eventType string) bool {
	if len(o.eventTypes) == 0 {
		return true
	}
	_, ok := o.eventTypes[eventType]
	return ok
}

// RegisterObserver subscribes observer to the given event types, or to all
// events when none are given. Registering the same observer ID again
// replaces its subscription.
func (r *Registry) RegisterObserver(observer Observer, eventTypes ...string) error {
	if observer == nil {
		return ErrObserverNil
	}
	if observer.ObserverID() == "" {
		return ErrObserverIDEmpty
	}

	reg := &observerRegistration{
		observer:     observer,
		eventTypes:   make(map[string]struct{}, len(eventTypes)),
		registeredAt: time.Now(),
	}
	for _, et := range eventTypes {
		reg.eventTypes[et] = struct{}{}
	}

	r.observerMu.Lock()
	defer r.observerMu.Unlock()
	r.observers = slices.DeleteFunc(r.observers, func(o *observerRegistration) bool {
		return o.observer.ObserverID() == observer.ObserverID()
	})
	r.observers = append(r.observers, reg)
	return nil
}

// UnregisterObserver removes observer. Removing an unknown observer is not
// an error.
func (r *Registry) UnregisterObserver(observer Observer) error {
	if observer == nil {
		return ErrObserverNil
	}
	r.observerMu.Lock()
	defer r.observerMu.Unlock()
	r.observers = slices.DeleteFunc(r.observers, func(o *observerRegistration) bool {
		return o.observer.ObserverID() == observer.ObserverID()
	})
	return nil
}

// NotifyObservers delivers event to every subscribed observer in
// registration order. All observers are called; their errors are joined.
func (r *Registry) NotifyObservers(ctx context.Context, event cloudevents.Event) error {
	r.observerMu.RLock()
	targets := make([]*observerRegistration, 0, len(r.observers))
	for _, o := range r.observers {
		if o.wants(event.Type()) {
			targets = append(targets, o)
		}
	}
	r.observerMu.RUnlock()

	var errs []error
	for _, o := range targets {
		if err := o.observer.OnEvent(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("observer %s: %w", o.observer.ObserverID(), err))
		}
	}
	return errors.Join(errs...)
}

// GetObservers returns information about the registered observers.
func (r *Registry) GetObservers() []ObserverInfo {
	r.observerMu.RLock()
	defer r.observerMu.RUnlock()

	infos := make([]ObserverInfo, 0, len(r.observers))
	for _, o := range r.observers {
		types := make([]string, 0, len(o.eventTypes))
		for et := range o.eventTypes {
			types = append(types, et)
		}
		slices.Sort(types)
		infos = append(infos, ObserverInfo{
			ID:           o.observer.ObserverID(),
			EventTypes:   types,
			RegisteredAt: o.registeredAt,
		})
	}
	return infos
}

func (r *Registry) hasObservers() bool {
	r.observerMu.RLock()
	defer r.observerMu.RUnlock()
	return len(r.observers) > 0
}

// FunctionalObserver adapts a plain function to the Observer interface.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

// NewFunctionalObserver creates an observer that calls handler for each event.
func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) Observer {
	return &FunctionalObserver{
		id:      id,
		handler: handler,
	}
}

// OnEvent implements Observer.
func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	return f.handler(ctx, event)
}

// ObserverID implements Observer.
func (f *FunctionalObserver) ObserverID() string {
	return f.id
}
