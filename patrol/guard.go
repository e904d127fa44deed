// SPDX-License-Identifier: MIT

package patrol

import "fmt"

// Guard is the full simulation state: where the guard stands and where it faces.
// Guard is comparable; two guards are equal only when both position and
// heading match, so the same cell under another heading is a distinct state.
type Guard struct {
	Direction Direction
	Position  Position
}

// NewGuard returns a guard at p facing d.
func NewGuard(p Position, d Direction) Guard {
	return Guard{Direction: d, Position: p}
}

// GuardAt returns a guard at p facing DefaultDirection.
func GuardAt(p Position) Guard {
	return Guard{Direction: DefaultDirection, Position: p}
}

func (g Guard) String() string {
	return fmt.Sprintf("%s facing %s", g.Position, g.Direction)
}
