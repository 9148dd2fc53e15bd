package cycle

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultHistoryLimit bounds how many distinct signatures a Detector records.
// Real inputs cycle within a few hundred steps.
const DefaultHistoryLimit = 1 << 16

// progressEvery is how often Simulate reports progress, in steps.
const progressEvery = 1 << 12

type config struct {
	logger   *log.Logger
	limit    int
	progress func(step int64)
}

// Option customises detection and projection.
type Option func(*config)

// WithLogger routes debug output to l. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHistoryLimit caps the number of distinct signatures remembered.
// Non-positive values keep the default.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithProgress registers a callback invoked periodically by Simulate.
func WithProgress(fn func(step int64)) Option {
	return func(c *config) { c.progress = fn }
}

func newConfig(opts []Option) config {
	c := config{
		logger: log.New(io.Discard),
		limit:  DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
