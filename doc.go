// Package gridpatrol simulates a guard patrolling a rectangular grid and
// searches for the single obstructions that trap it in a loop.
//
// What is gridpatrol?
//
//	A small library plus a command-line tool:
//		• patrol/   — Direction, Position, Guard, Area, StepStrategy and Trace
//		• obstruct/ — concurrent search for loop-inducing obstructions
//		• gridtext/ — parser for the '.', '#', '^' text form
//		• render/   — text drawings of walks and marked cells
//		• config/   — YAML + environment settings
//		• logging/  — zap logger construction
//		• cmd/gridpatrol — trace, loops and render subcommands
//
// Quick ASCII example:
//
//	....#.....
//	....^....#
//
//	the cell north of the guard is obstructed, so it turns right and walks
//	east; the next obstruction turns it south, off the grid.
//
//	go install github.com/katalvlaran/gridpatrol/cmd/gridpatrol@latest
package gridpatrol
