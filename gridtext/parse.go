// SPDX-License-Identifier: MIT

package gridtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpatrol/patrol"
)

// Parse reads a grid from its text form.
// A single trailing line break is allowed; "\r\n" line endings are accepted.
// Complexity: O(W×H) time, O(k) memory for k obstructions.
func Parse(input string) (*Map, error) {
	return Read(strings.NewReader(input))
}

// Read parses a grid from r. See Parse.
func Read(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridtext: read: %w", err)
	}

	return FromRows(rows)
}

// FromRows builds a Map from pre-split rows.
// Returns ErrEmptyGrid if rows is empty or the first row is empty, and
// ErrNonRectangular if any row length differs.
func FromRows(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	for y, row := range rows {
		if n := len([]rune(row)); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}

	area, err := patrol.NewArea(w, h)
	if err != nil {
		return nil, fmt.Errorf("gridtext: %w", err)
	}
	m := &Map{Area: area}
	found := false
	for y, row := range rows {
		for x, sym := range []rune(row) {
			p := patrol.Position{X: x, Y: y}
			switch sym {
			case SymbolFree:
			case SymbolObstacle:
				// Each cell is visited once, so this cannot be a duplicate.
				if err := area.AddObstacle(p); err != nil {
					return nil, fmt.Errorf("gridtext: %w", err)
				}
			case SymbolGuard:
				if found {
					m.ExtraGuards = append(m.ExtraGuards, p)
					continue
				}
				m.Guard = patrol.GuardAt(p)
				found = true
			default:
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnexpectedSymbol, sym, y, x)
			}
		}
	}
	if !found {
		return nil, ErrNoGuard
	}

	return m, nil
}
