package servicelocator

import (
	"errors"
)

// Registry errors
var (
	// Lookup errors
	ErrNotRegistered    = errors.New("service not registered")
	ErrServiceWrongType = errors.New("service doesn't satisfy requested type")
	ErrNotInitialized   = errors.New("service locator not initialized")

	// Registration errors
	ErrServiceNil            = errors.New("service is nil")
	ErrEmptyKey              = errors.New("service key is empty")
	ErrDuplicateRegistration = errors.New("service already registered")
	ErrUnregisterMissing     = errors.New("cannot unregister service that is not registered")

	// Configuration errors
	ErrConfigNil              = errors.New("config is nil")
	ErrConfigNotPointer       = errors.New("config must be a pointer")
	ErrConfigNotStruct        = errors.New("config must be a struct")
	ErrConfigFeederError      = errors.New("config feeder error")
	ErrConfigValidationFailed = errors.New("config validation failed")
	ErrDefaultValueParseError = errors.New("failed to parse default value")
	ErrUnsupportedLogLevel    = errors.New("unsupported log level")
	ErrUnsupportedLogFormat   = errors.New("unsupported log format")
	ErrEventSourceRequired    = errors.New("event source is required unless events are disabled")

	// Observer errors
	ErrObserverNil     = errors.New("observer is nil")
	ErrObserverIDEmpty = errors.New("observer id is empty")
)
