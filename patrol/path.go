// SPDX-License-Identifier: MIT

package patrol

// Path is the outcome of a trace.
type Path struct {
	// States is the ordered trajectory of distinct guard states, the start
	// state first. On StopLoop the repeated state is not included.
	States []Guard

	// Stop is the termination reason.
	Stop Stop

	// LoopIndex is the index in States of the first occurrence of the state
	// that recurred. It is -1 unless Stop == StopLoop.
	LoopIndex int
}

// Len returns the number of recorded states.
func (p *Path) Len() int { return len(p.States) }

// Last returns the final recorded state. ok is false for an empty path.
func (p *Path) Last() (g Guard, ok bool) {
	if len(p.States) == 0 {
		return Guard{}, false
	}

	return p.States[len(p.States)-1], true
}

// Cells returns the distinct positions of the trajectory in order of first visit.
// Complexity: O(n) time and memory.
func (p *Path) Cells() []Position {
	seen := make(map[Position]struct{}, len(p.States))
	out := make([]Position, 0, len(p.States))
	for _, g := range p.States {
		if _, ok := seen[g.Position]; ok {
			continue
		}
		seen[g.Position] = struct{}{}
		out = append(out, g.Position)
	}

	return out
}

// DistinctCells returns the number of distinct positions visited.
func (p *Path) DistinctCells() int {
	return len(p.Cells())
}

// Loops reports whether the trace ended in a loop.
func (p *Path) Loops() bool { return p.Stop == StopLoop }
