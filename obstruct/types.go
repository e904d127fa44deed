// SPDX-License-Identifier: MIT

package obstruct

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/gridpatrol/patrol"
	"go.uber.org/zap"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("obstruct: invalid option supplied")
	// ErrNilArea is returned when Search receives a nil area.
	ErrNilArea = errors.New("obstruct: area is nil")
)

// Option configures a Search.
type Option func(*Options)

// Options holds configurable parameters for Search.
// Invalid settings are recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Options struct {
	// Workers is the number of concurrent evaluations.
	Workers int
	// Strategy is the movement rule used for every trace.
	Strategy patrol.StepStrategy
	// Logger receives progress messages.
	Logger *zap.Logger
	// Metrics, if non-nil, is updated per candidate.
	Metrics *Metrics
	// PathOnly restricts candidates to cells the baseline walk consulted.
	PathOnly bool

	err error
}

// DefaultOptions returns Options with one worker per usable CPU,
// patrol.SimpleStep, a no-op logger, no metrics, and exhaustive candidates.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Strategy: patrol.SimpleStep{},
		Logger:   zap.NewNop(),
		Metrics:  nil,
		PathOnly: false,
	}
}

// WithWorkers sets the worker pool size. n < 1 is an option violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy sets the movement rule. A nil strategy is an option violation.
func WithStrategy(s patrol.StepStrategy) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: strategy is nil", ErrOptionViolation)
			return
		}
		o.Strategy = s
	}
}

// WithLogger sets the progress logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics installs prometheus collectors built by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithPathOnly traces only the cells the strategy queried through
// Field.InBounds or Field.IsObstructed while tracing the unobstructed walk;
// for patrol.SimpleStep those are the walked cells. Every other cell is
// credited with the baseline stop. Loops and Stops match the exhaustive
// search for any strategy whose moves depend only on the guard and the
// answers it gets from the Field.
func WithPathOnly() Option {
	return func(o *Options) {
		o.PathOnly = true
	}
}

// Result is the outcome of a Search.
type Result struct {
	// Candidates is the number of cells traced.
	Candidates int
	// Inferred is the number of cells WithPathOnly skipped; each is credited
	// with the baseline stop.
	Inferred int
	// Loops lists the loop-inducing cells in row-major order.
	Loops []patrol.Position
	// Stops tallies candidate outcomes by stop reason.
	Stops map[patrol.Stop]int
	// Baseline is the walk without any added obstruction.
	Baseline *patrol.Path
}

// Count returns the number of loop-inducing cells.
func (r *Result) Count() int { return len(r.Loops) }
