package servicelocator

import (
	"context"
	"fmt"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// AudioService and SaveService are capability interfaces used across tests.
type AudioService interface {
	Service
	Play(clip string) string
}

type SaveService interface {
	Service
	Save(slot int) error
}

type testAudio struct {
	name         string
	mu           sync.Mutex
	registered   int
	deregistered int
}

func (a *testAudio) OnRegister() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registered++
}

func (a *testAudio) OnDeregister() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deregistered++
}

func (a *testAudio) Play(clip string) string { return a.name + ":" + clip }

func (a *testAudio) hooks() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registered, a.deregistered
}

// testAudioSave satisfies both AudioService and SaveService.
type testAudioSave struct {
	testAudio
}

func (s *testAudioSave) Save(int) error { return nil }

type mockLogger struct {
	entries []mockLogEntry
	mu      sync.Mutex
}

type mockLogEntry struct {
	Level   string
	Message string
	Args    []interface{}
}

func (l *mockLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *mockLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l *mockLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *mockLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }

func (l *mockLogger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, mockLogEntry{Level: level, Message: msg, Args: args})
}

func (l *mockLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	id     string
	mu     sync.Mutex
	events []cloudevents.Event
	err    error
}

func (o *recordingObserver) OnEvent(_ context.Context, event cloudevents.Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	return o.err
}

func (o *recordingObserver) ObserverID() string { return o.id }

func (o *recordingObserver) types() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Type())
	}
	return out
}

func newTestRegistry(opts ...Option) (*Registry, *mockLogger) {
	logger := &mockLogger{}
	return New(append([]Option{WithLogger(logger)}, opts...)...), logger
}

func audioNamed(i int) *testAudio {
	return &testAudio{name: fmt.Sprintf("audio-%d", i)}
}
