package maze

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice where
// walkable[y][x] reports whether cell (x,y) can be entered.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(walkable [][]bool) (*Grid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walkable), len(walkable[0])
	for _, row := range walkable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Flatten row-major; this is also the deep copy.
	g := &Grid{
		width:    w,
		height:   h,
		walkable: make([]bool, 0, w*h),
	}
	for _, row := range walkable {
		for _, ok := range row {
			g.walkable = append(g.walkable, ok)
			if ok {
				g.open++
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width×Height.
func (g *Grid) Size() int { return g.width * g.height }

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int { return g.open }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsWalkable reports whether c is inside the grid and not blocked.
// Complexity: O(1).
func (g *Grid) IsWalkable(c Cell) bool {
	return g.InBounds(c) && g.walkable[g.Index(c)]
}

// Neighbor returns the cell adjacent to c in direction d and whether it is
// walkable. Out-of-bounds and blocked neighbours report false.
// Complexity: O(1).
func (g *Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	n := c.Step(d)
	return n, g.IsWalkable(n)
}

// Index maps c to a row-major index: y*Width + x.
// The result is meaningless for cells outside the grid.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}
