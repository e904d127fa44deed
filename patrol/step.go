// SPDX-License-Identifier: MIT

package patrol

// Field is the read-only view a StepStrategy needs to decide a move.
// *Area implements Field.
type Field interface {
	InBounds(p Position) bool
	IsObstructed(p Position) bool
}

// StepStrategy advances a guard by one move.
//
// Implementations must leave *g untouched whenever they return an error:
// a failed step is the end of a trace, and the caller observes the guard
// exactly as it was before the failing call.
type StepStrategy interface {
	Step(g *Guard, f Field) error
}

// StepFunc adapts an ordinary function to StepStrategy.
type StepFunc func(g *Guard, f Field) error

// Step calls fn(g, f).
func (fn StepFunc) Step(g *Guard, f Field) error {
	return fn(g, f)
}

// SimpleStep is the patrol rule: walk forward; in front of an obstruction
// turn right and try again, at most once per heading.
type SimpleStep struct{}

// Step moves g one cell.
// Returns ErrOutOfBounds when the cell ahead is outside f, ErrObstacle when
// all four headings are blocked and ErrInvalidDirection when g has no
// heading. g is modified only on success.
// Complexity: O(1).
func (SimpleStep) Step(g *Guard, f Field) error {
	if !g.Direction.Valid() {
		return ErrInvalidDirection
	}
	next := *g
	for range directions {
		pos, err := next.Position.Add(next.Direction.Delta())
		if err != nil || !f.InBounds(pos) {
			return ErrOutOfBounds
		}
		if f.IsObstructed(pos) {
			next.Direction = next.Direction.TurnRight()
			continue
		}
		next.Position = pos
		*g = next

		return nil
	}

	return ErrObstacle
}
