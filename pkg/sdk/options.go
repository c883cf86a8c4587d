package promptlab

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	now               func() time.Time
	newID             func() string
	seedUncategorized bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithClock overrides the time source used for created/updated timestamps.
// Useful for deterministic tests. Nil keeps the default (UTC wall clock).
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.now = now
	})
}

// WithIDGenerator overrides how prompt and collection IDs are generated.
// Nil keeps the default (random UUIDs).
func WithIDGenerator(newID func() string) Option {
	return optionFunc(func(c *clientConfig) {
		c.newID = newID
	})
}

// WithUncategorizedSeed creates the Uncategorized collection up front
// (and again after Reset) instead of on first use.
func WithUncategorizedSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.seedUncategorized = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
