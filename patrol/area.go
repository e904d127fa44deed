// SPDX-License-Identifier: MIT

package patrol

import (
	"fmt"
	"sort"
)

// Area is a width×height rectangle with a sparse set of obstructed cells.
// Obstructions are kept as column → set of rows, which stays small when
// obstructions are rare relative to the area.
//
// An Area is not safe for concurrent mutation. Concurrent readers are fine
// while nobody calls AddObstacle; use Clone to get a private copy.
type Area struct {
	width, height int
	obstacles     map[int]map[int]struct{}
	count         int
}

// NewArea returns an empty width×height area.
// Returns ErrInvalidSize if either dimension is negative.
func NewArea(width, height int) (*Area, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return &Area{
		width:     width,
		height:    height,
		obstacles: make(map[int]map[int]struct{}),
	}, nil
}

// Width returns the number of columns.
func (a *Area) Width() int { return a.width }

// Height returns the number of rows.
func (a *Area) Height() int { return a.height }

// InBounds reports whether p lies inside the rectangle.
// Complexity: O(1).
func (a *Area) InBounds(p Position) bool {
	return p.X >= 0 && p.X < a.width && p.Y >= 0 && p.Y < a.height
}

// IsObstructed reports whether p holds an obstruction.
// Complexity: O(1) amortized.
func (a *Area) IsObstructed(p Position) bool {
	col, ok := a.obstacles[p.X]
	if !ok {
		return false
	}
	_, ok = col[p.Y]

	return ok
}

// AddObstacle records an obstruction at p.
// Returns ErrOutOfBounds if p is outside the area and ErrObstacle if p is
// already obstructed; the area is unchanged in both cases.
// Complexity: O(1) amortized.
func (a *Area) AddObstacle(p Position) error {
	if !a.InBounds(p) {
		return fmt.Errorf("add obstacle at %s: %w", p, ErrOutOfBounds)
	}
	col, ok := a.obstacles[p.X]
	if !ok {
		col = make(map[int]struct{})
		a.obstacles[p.X] = col
	}
	if _, dup := col[p.Y]; dup {
		return fmt.Errorf("add obstacle at %s: %w", p, ErrObstacle)
	}
	col[p.Y] = struct{}{}
	a.count++

	return nil
}

// ObstacleCount returns the number of obstructed cells.
func (a *Area) ObstacleCount() int { return a.count }

// Obstacles returns every obstructed cell in row-major order.
// Complexity: O(k log k), k = ObstacleCount().
func (a *Area) Obstacles() []Position {
	out := make([]Position, 0, a.count)
	for x, col := range a.obstacles {
		for y := range col {
			out = append(out, Position{X: x, Y: y})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return a.Index(out[i]) < a.Index(out[j])
	})

	return out
}

// Clone returns a deep copy of a. Obstacles added to the clone do not
// affect a, and vice versa.
// Complexity: O(k), k = ObstacleCount().
func (a *Area) Clone() *Area {
	cp := &Area{
		width:     a.width,
		height:    a.height,
		obstacles: make(map[int]map[int]struct{}, len(a.obstacles)),
		count:     a.count,
	}
	for x, col := range a.obstacles {
		rows := make(map[int]struct{}, len(col))
		for y := range col {
			rows[y] = struct{}{}
		}
		cp.obstacles[x] = rows
	}

	return cp
}

// Cells returns width×height, the number of cells in the area.
func (a *Area) Cells() int { return a.width * a.height }

// Index maps p to a row-major index: Y*width + X.
// Complexity: O(1).
func (a *Area) Index(p Position) int {
	return p.Y*a.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// A zero-width area has no cells; every index maps to (idx,0), which is out
// of bounds.
// Complexity: O(1).
func (a *Area) Coordinate(idx int) Position {
	if a.width == 0 {
		return Position{X: idx}
	}

	return Position{X: idx % a.width, Y: idx / a.width}
}
