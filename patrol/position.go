// SPDX-License-Identifier: MIT

package patrol

import (
	"fmt"
	"math"
)

// Position is a cell coordinate. Valid positions have X, Y ≥ 0.
type Position struct {
	X, Y int
}

// Move is a signed displacement.
type Move struct {
	DX, DY int
}

// Add returns p displaced by m. It fails with ErrOutOfBounds when either
// resulting coordinate would be negative or overflow int.
// Complexity: O(1).
func (p Position) Add(m Move) (Position, error) {
	x, ok := addCoord(p.X, m.DX)
	if !ok {
		return p, ErrOutOfBounds
	}
	y, ok := addCoord(p.Y, m.DY)
	if !ok {
		return p, ErrOutOfBounds
	}

	return Position{X: x, Y: y}, nil
}

// addCoord adds a signed delta to a non-negative coordinate.
func addCoord(c, d int) (int, bool) {
	if c < 0 {
		return 0, false
	}
	if d > 0 && c > math.MaxInt-d {
		return 0, false
	}
	r := c + d
	if r < 0 {
		return 0, false
	}

	return r, true
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
