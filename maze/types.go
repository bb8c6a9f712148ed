package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidRune indicates a character that is not one of "#.SE".
	ErrInvalidRune = errors.New("maze: invalid cell character")
	// ErrNoStart indicates the puzzle text has no 'S' cell.
	ErrNoStart = errors.New("maze: no start cell")
	// ErrNoGoal indicates the puzzle text has no 'E' cell.
	ErrNoGoal = errors.New("maze: no goal cell")
	// ErrDuplicateStart indicates the puzzle text has more than one 'S' cell.
	ErrDuplicateStart = errors.New("maze: more than one start cell")
	// ErrDuplicateGoal indicates the puzzle text has more than one 'E' cell.
	ErrDuplicateGoal = errors.New("maze: more than one goal cell")
	// ErrUnknownDirection indicates ParseDirection received an unknown name.
	ErrUnknownDirection = errors.New("maze: unknown direction")
)

// Puzzle text runes.
const (
	RuneWall  = '#'
	RuneFloor = '.'
	RuneStart = 'S'
	RuneGoal  = 'E'
)

// Cell is an (X, Y) coordinate in the grid. X grows East, Y grows South.
type Cell struct {
	X, Y int
}

// Step returns the cell one unit away in direction d.
// It does not check bounds.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable rectangular grid of walkable and blocked cells.
// Cells are stored row-major: index = y*width + x.
type Grid struct {
	width, height int
	walkable      []bool
	open          int // number of walkable cells
}

// Puzzle is a Grid together with the start and goal cells named in its text.
type Puzzle struct {
	Grid  *Grid
	Start Cell
	Goal  Cell
}
