package optimal

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/statespace"
)

var (
	// ErrNilTable indicates that a nil *relax.Table was passed.
	ErrNilTable = errors.New("optimal: table is nil")

	// ErrUnreachable indicates the goal has no finite cost; there is no
	// optimal route to reconstruct.
	ErrUnreachable = errors.New("optimal: goal is unreachable")

	// ErrBestMismatch indicates the threshold does not equal the goal's
	// minimum cost in the table.
	ErrBestMismatch = errors.New("optimal: threshold does not match the goal's minimum cost")
)

// Cells returns the cells on at least one minimum-cost route to goal together
// with that minimum cost. An unreachable goal yields an empty set, Infinity
// and ErrUnreachable.
func Cells(t *relax.Table, goal maze.Cell) (mapset.Set[maze.Cell], int64, error) {
	if t == nil {
		return mapset.New[maze.Cell](), relax.Infinity, ErrNilTable
	}
	best, _ := t.Best(goal)
	vs, err := Collect(t, goal, best)
	if err != nil {
		return mapset.New[maze.Cell](), best, err
	}
	return Project(vs), best, nil
}

// Collect walks backward from every goal facing costing best, along edges
// whose weight exactly accounts for the cost difference, and returns every
// vertex visited. best must equal the goal's minimum cost in t.
func Collect(t *relax.Table, goal maze.Cell, best int64) (mapset.Set[statespace.Vertex], error) {
	seen := mapset.New[statespace.Vertex]()
	if t == nil {
		return seen, ErrNilTable
	}
	// Never walk backward against an infinite threshold.
	if best == relax.Infinity {
		return seen, ErrUnreachable
	}
	if lowest, _ := t.Best(goal); lowest != best {
		return seen, fmt.Errorf("%w: best=%d, table minimum=%d", ErrBestMismatch, best, lowest)
	}

	s := t.Space()
	work := stack.New[statespace.Vertex]()
	for _, v := range s.Facings(goal) {
		if t.Dist(v) == best {
			seen.Put(v)
			work.Push(v)
		}
	}

	buf := make([]statespace.Edge, 0, 2*maze.DirectionCount)
	for work.Size() > 0 {
		v := work.Pop()
		d := t.Dist(v)

		buf = s.AppendPredecessors(buf[:0], v)
		for _, e := range buf {
			u := e.To
			if seen.Has(u) {
				continue
			}
			du := t.Dist(u)
			if du == relax.Infinity || du+e.Weight != d {
				continue
			}
			seen.Put(u)
			work.Push(u)
		}
	}

	return seen, nil
}

// Project maps a vertex set onto the set of its cells.
func Project(vs mapset.Set[statespace.Vertex]) mapset.Set[maze.Cell] {
	cells := mapset.New[maze.Cell]()
	vs.Each(func(v statespace.Vertex) {
		cells.Put(v.Cell)
	})
	return cells
}

// Sorted returns the cells of set in row-major order (by Y, then X).
func Sorted(set mapset.Set[maze.Cell]) []maze.Cell {
	out := make([]maze.Cell, 0, set.Size())
	set.Each(func(c maze.Cell) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b maze.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
