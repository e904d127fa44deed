// SPDX-License-Identifier: MIT

// Package gridtext reads the text form of a patrol area.
//
// What:
//
//   - A grid is rows of equal length separated by line breaks.
//   - '.' is a free cell, '#' an obstruction, '^' the guard facing north.
//   - Parse returns the patrol.Area and the guard's start state.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or an empty first row.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnexpectedSymbol: any other character (row and column are reported).
//   - ErrNoGuard: no '^' in the grid.
//
// Several guards:
//
//	The first '^' in row-major order is the guard. Later markers are free
//	cells and are reported in Map.ExtraGuards so the caller can warn or reject.
package gridtext
