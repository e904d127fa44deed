// SPDX-License-Identifier: MIT

package patrol

import (
	"fmt"
)

// defaultCapacity sizes trajectory storage when no hint is given.
const defaultCapacity = 64

// Trace walks start across f using s until the walk ends.
//
// The start state is recorded first. After every successful step the new
// state is checked against the set of seen states: a repeat ends the trace
// with StopLoop and is not appended. A step failing with ErrOutOfBounds or
// ErrObstacle ends the trace with the matching Stop; the trajectory then
// holds every state up to the last successful step.
//
// Returns ErrNilStrategy when s is nil, ErrInvalidDirection when start has
// no valid heading, the wrapped context error on
// cancellation, a hook error from WithOnStep, or any strategy error that is
// not an outcome sentinel.
//
// Complexity: O(S) time and memory, S ≤ width×height×4 distinct states.
func Trace(f Field, start Guard, s StepStrategy, opts ...TraceOption) (*Path, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	if !start.Direction.Valid() {
		return nil, fmt.Errorf("patrol: start %s: %w", start.Position, ErrInvalidDirection)
	}
	o := DefaultTraceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	capHint := o.CapacityHint
	if capHint == 0 {
		capHint = defaultCapacity
	}
	t := &tracer{
		field:    f,
		strategy: s,
		opts:     o,
		seen:     make(map[Guard]int, capHint),
		path:     &Path{States: make([]Guard, 0, capHint), LoopIndex: -1},
	}

	return t.run(start)
}

// tracer holds the mutable state of one trace.
type tracer struct {
	field    Field
	strategy StepStrategy
	opts     TraceOptions
	seen     map[Guard]int // state → index in path.States
	path     *Path
}

func (t *tracer) run(start Guard) (*Path, error) {
	if err := t.record(start); err != nil {
		return nil, err
	}

	guard := start
	for steps := 1; ; steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := t.opts.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("patrol: trace cancelled after %d steps: %w", steps, err)
			}
		}

		if err := t.strategy.Step(&guard, t.field); err != nil {
			stop, ok := stopFor(err)
			if !ok {
				return nil, fmt.Errorf("patrol: step from %s: %w", guard, err)
			}
			t.path.Stop = stop

			return t.path, nil
		}

		if first, dup := t.seen[guard]; dup {
			t.path.Stop = StopLoop
			t.path.LoopIndex = first

			return t.path, nil
		}
		if err := t.record(guard); err != nil {
			return nil, err
		}
	}
}

// record appends g to the trajectory and the seen set, then runs the hook.
func (t *tracer) record(g Guard) error {
	t.seen[g] = len(t.path.States)
	t.path.States = append(t.path.States, g)
	if t.opts.OnStep != nil {
		if err := t.opts.OnStep(g); err != nil {
			return fmt.Errorf("patrol: OnStep(%s): %w", g, err)
		}
	}

	return nil
}
