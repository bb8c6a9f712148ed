package render

import (
	"bufio"
	"errors"
	"io"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turnmaze/maze"
)

// ErrNilPuzzle indicates that a nil puzzle was passed to a renderer.
var ErrNilPuzzle = errors.New("render: puzzle is nil")

// RuneRoute marks a cell on a minimum-cost route.
const RuneRoute = 'O'

// Palette used by Text when colour is enabled.
var (
	ColorWall     = color.Style{color.FgGray}
	ColorFloor    = color.Style{color.FgWhite}
	ColorRoute    = color.Style{color.FgGreen, color.OpBold}
	ColorEndpoint = color.Style{color.FgYellow, color.OpBold}
)

type textOptions struct {
	color bool
	mark  rune
}

// TextOption customizes Text.
type TextOption func(*textOptions)

// WithColor enables ANSI styling of walls, floor, route and endpoints.
func WithColor(enabled bool) TextOption {
	return func(o *textOptions) {
		o.color = enabled
	}
}

// WithMark replaces the route marker 'O'.
func WithMark(r rune) TextOption {
	return func(o *textOptions) {
		o.mark = r
	}
}

// Text writes p to w, one row per line, with the cells of route marked.
// A zero-value route draws the bare puzzle.
func Text(w io.Writer, p *maze.Puzzle, route mapset.Set[maze.Cell], opts ...TextOption) error {
	if p == nil || p.Grid == nil {
		return ErrNilPuzzle
	}
	o := textOptions{mark: RuneRoute}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < p.Grid.Height(); y++ {
		for x := 0; x < p.Grid.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			glyph, style := cellGlyph(p, route, c, o.mark)
			if o.color {
				_, _ = bw.WriteString(style.Sprint(string(glyph)))
			} else {
				_, _ = bw.WriteRune(glyph)
			}
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

func cellGlyph(p *maze.Puzzle, route mapset.Set[maze.Cell], c maze.Cell, mark rune) (rune, color.Style) {
	switch {
	case c == p.Start:
		return maze.RuneStart, ColorEndpoint
	case c == p.Goal:
		return maze.RuneGoal, ColorEndpoint
	case !p.Grid.IsWalkable(c):
		return maze.RuneWall, ColorWall
	case route.Has(c):
		return mark, ColorRoute
	default:
		return maze.RuneFloor, ColorFloor
	}
}
