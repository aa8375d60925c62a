package servicelocator

import (
	"fmt"
	"strings"
)

// Config holds the registry settings loaded at bootstrap.
type Config struct {
	LogLevel      string `yaml:"logLevel" toml:"log_level" env:"LOG_LEVEL" default:"info" desc:"Log level (debug, info, warn, error)"`
	LogFormat     string `yaml:"logFormat" toml:"log_format" env:"LOG_FORMAT" default:"text" desc:"Log output format (text, json)"`
	EventSource   string `yaml:"eventSource" toml:"event_source" env:"EVENT_SOURCE" default:"servicelocator" desc:"CloudEvents source attribute for registry events"`
	DisableEvents bool   `yaml:"disableEvents" toml:"disable_events" env:"DISABLE_EVENTS" desc:"Stop notifying observers of registry events"`
}

// Feeder populates a configuration structure from some source.
type Feeder interface {
	Feed(structure interface{}) error
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := ProcessConfigDefaults(cfg); err != nil {
		// defaults are static struct tags
		panic(err)
	}
	return cfg
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", err, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedLogFormat, c.LogFormat)
	}
	if !c.DisableEvents && c.EventSource == "" {
		return ErrEventSourceRequired
	}
	return nil
}

// LoadConfig applies defaults to the zero-valued fields of cfg, then runs each feeder in order so
// later feeders override earlier ones, then validates the result.
func LoadConfig(cfg *Config, feeders ...Feeder) error {
	if cfg == nil {
		return ErrConfigNil
	}
	if err := ProcessConfigDefaults(cfg); err != nil {
		return err
	}

	for _, f := range feeders {
		if err := f.Feed(cfg); err != nil {
			return fmt.Errorf("%w: %w", ErrConfigFeederError, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidationFailed, err)
	}
	return nil
}

// ComplexFeeder is a Feeder that can also populate a single named section.
type ComplexFeeder interface {
	Feeder
	FeedKey(key string, target interface{}) error
}

// LoadConfigSection is like LoadConfig but reads only the named section
// from feeders that support sections. Other feeders receive cfg as a whole.
func LoadConfigSection(section string, cfg *Config, feeders ...Feeder) error {
	sectioned := make([]Feeder, 0, len(feeders))
	for _, f := range feeders {
		if cf, ok := f.(ComplexFeeder); ok && section != "" {
			sectioned = append(sectioned, sectionFeeder{key: section, feeder: cf})
			continue
		}
		sectioned = append(sectioned, f)
	}
	return LoadConfig(cfg, sectioned...)
}

type sectionFeeder struct {
	key    string
	feeder ComplexFeeder
}

func (s sectionFeeder) Feed(structure interface{}) error {
	return s.feeder.FeedKey(s.key, structure)
}
