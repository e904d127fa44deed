// SPDX-License-Identifier: MIT

// Package render draws a patrol area as text, optionally overlaid with a
// guard's walk and marked cells such as loop-inducing obstructions.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpatrol/patrol"
)

// Glyphs used in the drawing.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphVisited  = 'X'
	GlyphMark     = 'O'
)

// Option configures Draw.
type Option func(*options)

type options struct {
	path  *patrol.Path
	marks []patrol.Position
	color bool
}

// WithPath overlays the cells of p with GlyphVisited.
func WithPath(p *patrol.Path) Option {
	return func(o *options) { o.path = p }
}

// WithMarks overlays cells with GlyphMark.
func WithMarks(cells []patrol.Position) Option {
	return func(o *options) { o.marks = cells }
}

// WithColor styles glyphs with terminal colors.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

var (
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	visitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	guardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// GuardGlyph returns the arrow for a heading: ^ > v <.
func GuardGlyph(d patrol.Direction) rune {
	switch d {
	case patrol.East:
		return '>'
	case patrol.South:
		return 'v'
	case patrol.West:
		return '<'
	default:
		return '^'
	}
}

// Draw renders area with the guard g, one line per row, each ending in "\n".
// Marks take precedence over the guard, the guard over visited cells.
// Complexity: O(W×H + n), n = path length + marks.
func Draw(area *patrol.Area, g patrol.Guard, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	visited := make(map[patrol.Position]struct{})
	if o.path != nil {
		for _, p := range o.path.Cells() {
			visited[p] = struct{}{}
		}
	}
	marked := make(map[patrol.Position]struct{}, len(o.marks))
	for _, p := range o.marks {
		marked[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((area.Width() + 1) * area.Height())
	for y := 0; y < area.Height(); y++ {
		for x := 0; x < area.Width(); x++ {
			p := patrol.Position{X: x, Y: y}
			glyph, style := GlyphFree, lipgloss.NewStyle()
			switch _, isMark := marked[p]; {
			case isMark:
				glyph, style = GlyphMark, markStyle
			case p == g.Position:
				glyph, style = GuardGlyph(g.Direction), guardStyle
			case area.IsObstructed(p):
				glyph, style = GlyphObstacle, obstacleStyle
			default:
				if _, ok := visited[p]; ok {
					glyph, style = GlyphVisited, visitedStyle
				}
			}
			if o.color && glyph != GlyphFree {
				sb.WriteString(style.Render(string(glyph)))
				continue
			}
			sb.WriteRune(glyph)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
