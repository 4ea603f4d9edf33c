package consolidate

import (
	"runtime"

	"github.com/crosswalklabs/crosswalk/pkg/errors"
)

// config holds the resolved pipeline configuration.
type config struct {
	strategy      Strategy
	rowPreserving bool
	workers       int
}

// Option configures a consolidation run.
type Option func(*config) error

// defaults returns the default configuration: entity-mode output, the
// max-count strategy, and one canonicalization worker per CPU.
func defaults() *config {
	return &config{
		strategy: MaxCount(),
		workers:  runtime.NumCPU(),
	}
}

// WithStrategy sets the canonical value selection strategy.
func WithStrategy(strategy Strategy) Option {
	return func(c *config) error {
		if strategy == nil {
			return errors.NewValidationError("strategy", nil, "cannot be nil")
		}
		c.strategy = strategy
		return nil
	}
}

// WithRowPreserving selects row-preserving output: one output row per input
// row, each replaced by its entity's consolidated record, instead of one
// row per entity.
func WithRowPreserving(enabled bool) Option {
	return func(c *config) error {
		c.rowPreserving = enabled
		return nil
	}
}

// WithWorkers sets how many goroutines canonicalize components. Components
// are independent once extracted, so this only bounds parallelism; output
// is identical for any worker count.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return errors.NewValidationError("workers", n, "must be at least 1")
		}
		c.workers = n
		return nil
	}
}
