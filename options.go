package servicelocator

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConfig applies cfg to the registry. A nil cfg keeps the defaults.
func WithConfig(cfg *Config) Option {
	return func(r *Registry) {
		if cfg != nil {
			r.config = cfg
		}
	}
}

// WithObserver attaches an observer before any event is emitted, so it also
// sees the initialization event. An invalid observer is skipped and logged
// once the registry's logger is set.
func WithObserver(observer Observer, eventTypes ...string) Option {
	return func(r *Registry) {
		if err := r.RegisterObserver(observer, eventTypes...); err != nil {
			r.optionErrs = append(r.optionErrs, err)
		}
	}
}
