package relax

import (
	"slices"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/statespace"
)

// Table is the DistanceTable produced by Relax: the minimum known cost from
// the start vertex to every vertex of the space, Infinity when unreached.
// It is read-only once Relax returns.
type Table struct {
	space *statespace.Space
	start statespace.Vertex
	dist  []int64 // indexed by space.Index
	stats Stats
}

func newTable(s *statespace.Space, start statespace.Vertex) *Table {
	dist := make([]int64, s.VertexCount())
	for i := range dist {
		dist[i] = Infinity
	}
	return &Table{space: s, start: start, dist: dist}
}

// Space returns the state space the table was computed over.
func (t *Table) Space() *statespace.Space { return t.space }

// Start returns the start vertex; its cost is 0.
func (t *Table) Start() statespace.Vertex { return t.start }

// Stats returns the work counters of the run that built the table.
func (t *Table) Stats() Stats { return t.stats }

// Dist returns the minimum cost to reach v, or Infinity.
// Vertices outside the space are never reached.
func (t *Table) Dist(v statespace.Vertex) int64 {
	if !t.space.Contains(v) {
		return Infinity
	}
	return t.dist[t.space.Index(v)]
}

// Reached reports whether Dist(v) is finite.
func (t *Table) Reached(v statespace.Vertex) bool {
	return t.Dist(v) != Infinity
}

// Best returns the minimum cost over the four facings of c and whether any
// of them was reached.
func (t *Table) Best(c maze.Cell) (int64, bool) {
	best := Infinity
	for _, v := range t.space.Facings(c) {
		if d := t.Dist(v); d < best {
			best = d
		}
	}
	return best, best != Infinity
}

// Len returns the number of reached vertices.
func (t *Table) Len() int {
	n := 0
	for _, d := range t.dist {
		if d != Infinity {
			n++
		}
	}
	return n
}

// Each calls fn for every reached vertex in index order (row-major cells,
// facings North to West).
func (t *Table) Each(fn func(v statespace.Vertex, cost int64)) {
	for i, d := range t.dist {
		if d != Infinity {
			fn(t.space.VertexAt(i), d)
		}
	}
}

// Equal reports whether both tables hold the same start and the same cost
// for every vertex. Stats are ignored.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.start == o.start && slices.Equal(t.dist, o.dist)
}
