// SPDX-License-Identifier: MIT

package patrol

import (
	"context"
	"errors"
)

// Sentinel errors for patrol operations.
var (
	// ErrOutOfBounds indicates a position outside the area or below zero.
	ErrOutOfBounds = errors.New("patrol: position out of bounds")

	// ErrObstacle indicates an obstructed cell: a duplicate AddObstacle,
	// or a guard with every heading blocked.
	ErrObstacle = errors.New("patrol: position obstructed")

	// ErrLoop indicates that a guard state was revisited.
	ErrLoop = errors.New("patrol: guard state revisited")

	// ErrInvalidSize indicates negative area dimensions.
	ErrInvalidSize = errors.New("patrol: area dimensions must be non-negative")

	// ErrNilStrategy is returned by Trace when no StepStrategy is supplied.
	ErrNilStrategy = errors.New("patrol: step strategy is nil")

	// ErrInvalidDirection indicates a guard heading outside North..West,
	// such as the zero value of Direction.
	ErrInvalidDirection = errors.New("patrol: invalid direction")
)

// Stop classifies how a trace ended.
type Stop int

const (
	// StopOutOfBounds: the guard's next move leaves the area.
	StopOutOfBounds Stop = iota
	// StopObstacle: the guard is enclosed on all four sides.
	StopObstacle
	// StopLoop: the guard revisited a (position, heading) state.
	StopLoop
)

// String returns a lowercase name for s.
func (s Stop) String() string {
	switch s {
	case StopOutOfBounds:
		return "out-of-bounds"
	case StopObstacle:
		return "obstacle"
	case StopLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Err maps s to its sentinel error.
func (s Stop) Err() error {
	switch s {
	case StopOutOfBounds:
		return ErrOutOfBounds
	case StopObstacle:
		return ErrObstacle
	case StopLoop:
		return ErrLoop
	default:
		return nil
	}
}

// stopFor maps a strategy error onto a Stop. ok is false for errors outside
// the outcome set.
func stopFor(err error) (s Stop, ok bool) {
	switch {
	case errors.Is(err, ErrOutOfBounds):
		return StopOutOfBounds, true
	case errors.Is(err, ErrObstacle):
		return StopObstacle, true
	case errors.Is(err, ErrLoop):
		return StopLoop, true
	default:
		return 0, false
	}
}

// TraceOption configures optional behavior of Trace.
type TraceOption func(*TraceOptions)

// TraceOptions holds configurable parameters for Trace.
type TraceOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is polled every cancelCheckInterval steps.
	Ctx context.Context

	// OnStep, if non-nil, is invoked for every recorded state, start included.
	// Returning an error aborts the trace with that error.
	OnStep func(g Guard) error

	// CapacityHint pre-sizes the trajectory and the seen-state set.
	// Zero lets Trace pick a small default.
	CapacityHint int
}

// cancelCheckInterval is how many steps pass between context polls.
const cancelCheckInterval = 1024

// DefaultTraceOptions returns TraceOptions with a background context,
// no hook and no capacity hint.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{
		Ctx:          context.Background(),
		OnStep:       nil,
		CapacityHint: 0,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) TraceOption {
	return func(o *TraceOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs fn as a per-state hook.
func WithOnStep(fn func(g Guard) error) TraceOption {
	return func(o *TraceOptions) {
		o.OnStep = fn
	}
}

// WithCapacityHint pre-sizes internal storage for about n states.
// Negative values are ignored.
func WithCapacityHint(n int) TraceOption {
	return func(o *TraceOptions) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}
