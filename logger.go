package servicelocator

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger defines the interface for registry logging.
// The locator uses structured logging with key-value pairs, so any
// slog-compatible logger can be plugged in:
//
//	logger.Warn("Service already registered", "key", "AudioService")
//
// *slog.Logger satisfies this interface directly.
type Logger interface {
	// Info logs an informational message, e.g. a successful registration.
	Info(msg string, args ...any)

	// Error logs an error message. Used when a requested service is missing.
	Error(msg string, args ...any)

	// Warn logs a warning for recoverable mistakes such as duplicate
	// registration or unregistering an absent key.
	Warn(msg string, args ...any)

	// Debug logs detailed diagnostic information.
	Debug(msg string, args ...any)
}

// NewLogger builds the default slog-backed Logger described by cfg.
// A nil cfg uses DefaultConfig.
func NewLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if w == nil {
		w = os.Stderr
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, ErrUnsupportedLogFormat
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, ErrUnsupportedLogLevel
	}
}
