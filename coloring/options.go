// options.go — functional options for the chromatic solver.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - The solver itself never panics; it returns sentinel errors.

package coloring

import (
	"github.com/kataras/golog"
)

// DefaultMaxVertices is the default ceiling on |V| for Chromatic.
// 10! = 3,628,800 orderings, a few seconds on one core at worst.
const DefaultMaxVertices = 10

// Option customizes a Chromatic call.
type Option func(*config)

type config struct {
	maxVertices int
	workers     int
	logger      *golog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxVertices: DefaultMaxVertices,
		workers:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxVertices sets the ceiling on |V|. Zero removes the ceiling; the
// search then runs for as long as |V|! demands. Panics if n < 0.
func WithMaxVertices(n int) Option {
	if n < 0 {
		panic("coloring: WithMaxVertices(n<0)")
	}
	return func(c *config) { c.maxVertices = n }
}

// WithWorkers evaluates orderings on k goroutines. Results are identical to
// the sequential search. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("coloring: WithWorkers(k<1)")
	}
	return func(c *config) { c.workers = k }
}

// WithLogger enables debug-level progress logging. Panics on nil.
func WithLogger(l *golog.Logger) Option {
	if l == nil {
		panic("coloring: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

func (c config) debugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
