package mazegen

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/turnmaze/maze"
)

// MinRooms is the smallest accepted width or height, in rooms.
const MinRooms = 1

// room is a room coordinate; its character cell is (2x+1, 2y+1).
type room struct{ x, y int }

// Generate returns a w×h-room maze as a Puzzle whose grid measures
// (2w+1)×(2h+1) characters.
//
// Behavior:
//  1. Validate options and sizes.
//  2. Carve a perfect maze with a randomized depth-first backtracker starting
//     from the bottom-left room.
//  3. Open remaining inner walls with the configured loop chance.
//  4. Place the start bottom-left and the goal top-right.
func Generate(w, h int, opts ...Option) (*maze.Puzzle, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if w < MinRooms || h < MinRooms || w*h < 2 {
		return nil, fmt.Errorf("Generate: w=%d, h=%d (each ≥ %d, at least 2 rooms): %w", w, h, MinRooms, ErrTooSmall)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	cols, rows := 2*w+1, 2*h+1
	open := make([][]bool, rows)
	for y := range open {
		open[y] = make([]bool, cols)
	}
	cellOf := func(r room) maze.Cell { return maze.Cell{X: 2*r.x + 1, Y: 2*r.y + 1} }
	carve := func(c maze.Cell) { open[c.Y][c.X] = true }

	// 2) Depth-first backtracker.
	visited := make([]bool, w*h)
	first := room{0, h - 1}
	visited[first.y*w+first.x] = true
	carve(cellOf(first))

	work := stack.New[room]()
	work.Push(first)
	cand := make([]maze.Direction, 0, maze.DirectionCount)
	for work.Size() > 0 {
		cur := work.Peek()
		cand = cand[:0]
		for _, d := range maze.Directions() {
			dx, dy := d.Delta()
			n := room{cur.x + dx, cur.y + dy}
			if n.x < 0 || n.x >= w || n.y < 0 || n.y >= h || visited[n.y*w+n.x] {
				continue
			}
			cand = append(cand, d)
		}
		if len(cand) == 0 {
			work.Pop()
			continue
		}
		d := cand[cfg.rng.Intn(len(cand))]
		dx, dy := d.Delta()
		next := room{cur.x + dx, cur.y + dy}
		carve(cellOf(cur).Step(d)) // wall between the rooms
		carve(cellOf(next))
		visited[next.y*w+next.x] = true
		work.Push(next)
	}

	// 3) Extra openings. Only East and South walls, so each is tried once.
	if cfg.loopChance > 0 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := cellOf(room{x, y})
				if x+1 < w {
					if wall := c.Step(maze.East); !open[wall.Y][wall.X] && cfg.rng.Float64() < cfg.loopChance {
						carve(wall)
					}
				}
				if y+1 < h {
					if wall := c.Step(maze.South); !open[wall.Y][wall.X] && cfg.rng.Float64() < cfg.loopChance {
						carve(wall)
					}
				}
			}
		}
	}

	// 4) Build the immutable grid.
	g, err := maze.NewGrid(open)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	return &maze.Puzzle{
		Grid:  g,
		Start: cellOf(first),
		Goal:  cellOf(room{w - 1, 0}),
	}, nil
}
