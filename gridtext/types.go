// SPDX-License-Identifier: MIT

package gridtext

import (
	"errors"

	"github.com/katalvlaran/gridpatrol/patrol"
)

// Sentinel errors for gridtext operations.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("gridtext: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridtext: all rows must have the same length")
	// ErrUnexpectedSymbol indicates a character outside the grid alphabet.
	ErrUnexpectedSymbol = errors.New("gridtext: unexpected symbol")
	// ErrNoGuard indicates a grid without a guard marker.
	ErrNoGuard = errors.New("gridtext: no guard marker")
)

// Grid symbols.
const (
	SymbolFree     = '.'
	SymbolObstacle = '#'
	SymbolGuard    = '^'
)

// Map is a parsed grid.
type Map struct {
	// Area holds the dimensions and obstructions.
	Area *patrol.Area
	// Guard is the start state of the first guard marker, facing north.
	Guard patrol.Guard
	// ExtraGuards lists further guard markers in row-major order.
	ExtraGuards []patrol.Position
}
