// SPDX-License-Identifier: MIT

// Package patrol simulates a guard walking a rectangular area with
// obstructions and classifies how the walk ends.
//
// What:
//
//   - Direction, Position and Move model a 4-way heading on a non-negative grid.
//   - Area holds the rectangle and a sparse obstruction set (column → rows).
//   - StepStrategy decides a single move; SimpleStep walks forward and turns
//     right in front of an obstruction.
//   - Trace repeats Step until the guard leaves the area, is boxed in, or
//     revisits a (position, heading) state.
//
// Why:
//
//   - Guard state is the pair (position, heading); the state space is finite,
//     so a hash set of seen states proves termination of every trace.
//   - The strategy is an interface, so other movement rules plug into Trace
//     unchanged.
//
// Complexity:
//
//   - Step:  O(1) time, O(1) memory.
//   - Trace: O(S) time and memory, S ≤ width×height×4 distinct states.
//
// Outcomes:
//
//   - StopOutOfBounds: the next move would leave the rectangle.
//   - StopObstacle:    every heading from the current cell is obstructed.
//   - StopLoop:        a previously seen state recurs.
//
// None of the outcomes is a failure; Trace returns a non-nil error only for
// cancellation, hook errors, or strategy errors outside the outcome set.
package patrol
