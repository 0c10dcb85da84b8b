package parset

import (
	"runtime"

	"github.com/go-logr/logr"
)

// Option configures the execution of a pipeline.
type Option func(*config)

type config struct {
	parallelism int
	split       SplitPolicy
	log         logr.Logger
}

// WithParallelism sets the maximum number of batches processed at the same time.
// Values below 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}

		c.parallelism = n
	}
}

// WithSplitPolicy sets the policy used to split the source into batches.
func WithSplitPolicy(split SplitPolicy) Option {
	return func(c *config) {
		c.split = split
	}
}

// WithBatchSize splits the source into batches of n elements.
func WithBatchSize(n int) Option {
	return WithSplitPolicy(FixedSize(n))
}

// WithLogger sets the logger used by terminal operations.
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		parallelism: runtime.GOMAXPROCS(0),
		log:         logr.Discard(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.split == nil {
		cfg.split = EvenSplit(cfg.parallelism)
	}

	return cfg
}
