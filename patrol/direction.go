// SPDX-License-Identifier: MIT

package patrol

// Direction is one of the four compass headings.
// The zero value is not a heading; use DefaultDirection.
type Direction int

const (
	North Direction = iota + 1
	East
	South
	West
)

// DefaultDirection is the heading a guard starts with unless told otherwise.
const DefaultDirection = North

// directions lists the headings in turn-right order.
var directions = [4]Direction{North, East, South, West}

// Directions returns the four headings in turn-right order, starting at North.
func Directions() [4]Direction {
	return directions
}

// TurnRight returns the heading 90° clockwise from d.
// Complexity: O(1).
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Delta returns the unit move for d. Y grows southwards.
func (d Direction) Delta() Move {
	switch d {
	case North:
		return Move{DX: 0, DY: -1}
	case East:
		return Move{DX: 1, DY: 0}
	case South:
		return Move{DX: 0, DY: 1}
	case West:
		return Move{DX: -1, DY: 0}
	default:
		return Move{}
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "invalid"
	}
}
