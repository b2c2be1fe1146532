// Package acopts implements the functional-options configuration surface
// for Automaton and Censor: small value types applied against a plain
// Config rather than against the automaton itself, so acopts has no
// dependency on the ahocorasick package.
package acopts

import "log/slog"

// Config accumulates the effect of applied Options. The ahocorasick
// package reads it once, at construction time.
type Config struct {
	// TraceHandler, when non-nil, turns on structured event logging of
	// mutation and search calls via the actrace package.
	TraceHandler slog.Handler

	// InitialCapacity pre-sizes the node arena to avoid reallocation
	// while populating the dictionary. Zero means "no hint".
	InitialCapacity int

	// RWGuard opts the automaton into optional readers-writer locking:
	// every mutation takes an exclusive lock, every read takes a shared
	// one. Off by default.
	RWGuard bool
}

// Option mutates a Config. Options compose by being applied in order.
type Option func(*Config)

// WithTrace attaches a slog.Handler that receives one structured record
// per insert, remove, build, and search call.
func WithTrace(handler slog.Handler) Option {
	return func(c *Config) {
		c.TraceHandler = handler
	}
}

// WithInitialCapacity pre-sizes the node arena for roughly n nodes,
// avoiding reallocation while the dictionary is first populated.
func WithInitialCapacity(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.InitialCapacity = n
		}
	}
}

// WithRWGuard wraps every mutation and search behind an internal
// sync.RWMutex, so a single Automaton can be shared by concurrent
// readers and a single mutating goroutine.
func WithRWGuard() Option {
	return func(c *Config) {
		c.RWGuard = true
	}
}

// Apply folds a sequence of Options into a fresh Config.
func Apply(opts []Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}
