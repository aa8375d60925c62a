package servicelocator

import (
	"context"
	"errors"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloudEvent(t *testing.T) {
	data := map[string]interface{}{"key": "AudioService"}
	metadata := map[string]interface{}{"origin": "test"}

	event := NewCloudEvent(EventTypeServiceRegistered, "test.source", data, metadata)

	assert.Equal(t, EventTypeServiceRegistered, event.Type())
	assert.Equal(t, "test.source", event.Source())
	assert.Equal(t, cloudevents.VersionV1, event.SpecVersion())
	assert.NotEmpty(t, event.ID())
	assert.False(t, event.Time().IsZero())
	assert.Equal(t, "test", event.Extensions()["origin"])

	var decoded map[string]interface{}
	require.NoError(t, event.DataAs(&decoded))
	assert.Equal(t, "AudioService", decoded["key"])

	require.NoError(t, ValidateCloudEvent(event))
}

func TestValidateCloudEvent_Invalid(t *testing.T) {
	event := cloudevents.NewEvent()
	require.Error(t, ValidateCloudEvent(event))
}

func TestRegistry_EmitsLifecycleEvents(t *testing.T) {
	observer := &recordingObserver{id: "all"}
	r, _ := newTestRegistry(WithObserver(observer))

	require.NoError(t, r.Register("AudioService", audioNamed(1)))
	require.NoError(t, r.Register("AudioService", audioNamed(2)))
	_, _ = r.Get("SaveService")
	r.Unregister("AudioService")
	r.Unregister("AudioService")

	assert.Equal(t, []string{
		EventTypeServiceRegistered,
		EventTypeServiceDuplicate,
		EventTypeServiceMissing,
		EventTypeServiceUnregistered,
	}, observer.types())

	for _, event := range observer.events {
		assert.Equal(t, "servicelocator", event.Source())
		require.NoError(t, ValidateCloudEvent(event))
	}
}

func TestRegistry_ObserverEventTypeFilter(t *testing.T) {
	observer := &recordingObserver{id: "registered-only"}
	r, _ := newTestRegistry()
	require.NoError(t, r.RegisterObserver(observer, EventTypeServiceRegistered))

	require.NoError(t, r.Register("AudioService", audioNamed(1)))
	r.Unregister("AudioService")

	assert.Equal(t, []string{EventTypeServiceRegistered}, observer.types())
}

func TestRegistry_EventsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisableEvents = true
	observer := &recordingObserver{id: "silent"}
	r, _ := newTestRegistry(WithConfig(cfg), WithObserver(observer))

	require.NoError(t, r.Register("AudioService", audioNamed(1)))

	assert.Empty(t, observer.types())
}

func TestRegistry_ObserverErrorDoesNotFailOperation(t *testing.T) {
	failing := &recordingObserver{id: "failing", err: errors.New("boom")}
	r, logger := newTestRegistry(WithObserver(failing))

	require.NoError(t, r.Register("AudioService", audioNamed(1)))

	assert.True(t, r.Has("AudioService"))
	assert.Equal(t, 2, logger.count("DEBUG"), "registration plus observer failure")
}

func TestRegistry_ObserverRegistration(t *testing.T) {
	r, _ := newTestRegistry()

	require.ErrorIs(t, r.RegisterObserver(nil), ErrObserverNil)
	require.ErrorIs(t, r.RegisterObserver(&recordingObserver{}), ErrObserverIDEmpty)

	first := &recordingObserver{id: "a"}
	require.NoError(t, r.RegisterObserver(first, EventTypeServiceMissing, EventTypeServiceDuplicate))
	require.NoError(t, r.RegisterObserver(NewFunctionalObserver("b", func(context.Context, cloudevents.Event) error {
		return nil
	})))

	infos := r.GetObservers()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].ID)
	assert.Equal(t, []string{EventTypeServiceDuplicate, EventTypeServiceMissing}, infos[0].EventTypes)
	assert.Empty(t, infos[1].EventTypes)

	// re-registering replaces the subscription
	require.NoError(t, r.RegisterObserver(first))
	infos = r.GetObservers()
	require.Len(t, infos, 2)
	assert.Equal(t, "b", infos[0].ID)
	assert.Equal(t, "a", infos[1].ID)

	require.NoError(t, r.UnregisterObserver(first))
	require.NoError(t, r.UnregisterObserver(first))
	assert.Len(t, r.GetObservers(), 1)
}

func TestWithObserver_InvalidObserverIsLogged(t *testing.T) {
	r, logger := newTestRegistry(WithObserver(nil), WithObserver(&recordingObserver{}))

	assert.Empty(t, r.GetObservers())
	assert.Equal(t, 2, logger.count("ERROR"))
}

func TestNotifyObservers_JoinsErrors(t *testing.T) {
	r, _ := newTestRegistry()
	ok := &recordingObserver{id: "ok"}
	bad := &recordingObserver{id: "bad", err: errors.New("boom")}
	require.NoError(t, r.RegisterObserver(bad))
	require.NoError(t, r.RegisterObserver(ok))

	err := r.NotifyObservers(context.Background(), NewCloudEvent(EventTypeServiceRegistered, "test", nil, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "observer bad: boom")
	assert.Len(t, ok.types(), 1, "later observers still run")
}
