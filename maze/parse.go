package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a puzzle from r. Each non-empty line is one row of the grid:
// '#' is a wall, '.' is floor, 'S' is the start and 'E' the goal. Start and
// goal are walkable. Trailing blank lines and '\r' line endings are accepted.
//
// Behavior:
//  1. Read all lines; blank lines at the end are dropped.
//  2. Validate runes and rectangular shape.
//  3. Record exactly one start and one goal.
//  4. Build the immutable Grid.
func Parse(r io.Reader) (*Puzzle, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading puzzle: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		start, goal       Cell
		hasStart, hasGoal bool
		width             = len(rows[0])
		walkable          = make([][]bool, len(rows))
	)
	for y, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), width)
		}
		walkable[y] = make([]bool, width)
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case RuneWall:
				// blocked
			case RuneFloor:
				walkable[y][x] = true
			case RuneStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrDuplicateStart, x, y)
				}
				start, hasStart = Cell{X: x, Y: y}, true
				walkable[y][x] = true
			case RuneGoal:
				if hasGoal {
					return nil, fmt.Errorf("%w: second 'E' at (%d,%d)", ErrDuplicateGoal, x, y)
				}
				goal, hasGoal = Cell{X: x, Y: y}, true
				walkable[y][x] = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidRune, line[x], x, y)
			}
		}
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if !hasGoal {
		return nil, ErrNoGoal
	}

	g, err := NewGrid(walkable)
	if err != nil {
		return nil, err
	}

	return &Puzzle{Grid: g, Start: start, Goal: goal}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Puzzle, error) {
	return Parse(strings.NewReader(s))
}

// String renders the puzzle back into its text form, one row per line.
func (p *Puzzle) String() string {
	var b strings.Builder
	b.Grow((p.Grid.Width() + 1) * p.Grid.Height())
	for y := 0; y < p.Grid.Height(); y++ {
		for x := 0; x < p.Grid.Width(); x++ {
			c := Cell{X: x, Y: y}
			switch {
			case c == p.Start:
				b.WriteByte(RuneStart)
			case c == p.Goal:
				b.WriteByte(RuneGoal)
			case p.Grid.IsWalkable(c):
				b.WriteByte(RuneFloor)
			default:
				b.WriteByte(RuneWall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
