package statespace

import (
	"github.com/katalvlaran/turnmaze/maze"
)

// Space is the oriented view of a maze.Grid. It is immutable and safe for
// concurrent readers; it stores no search state.
type Space struct {
	grid  *maze.Grid
	costs Costs
}

// New wraps g with the given edge costs.
// Returns ErrNilGrid for a nil grid and ErrNegativeCost for invalid costs.
func New(g *maze.Grid, costs Costs) (*Space, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	return &Space{grid: g, costs: costs}, nil
}

// Grid returns the wrapped maze grid.
func (s *Space) Grid() *maze.Grid { return s.grid }

// Costs returns the edge-weight table.
func (s *Space) Costs() Costs { return s.costs }

// VertexCount is 4 × (grid width × height), the size of a dense vertex index.
func (s *Space) VertexCount() int {
	return s.grid.Size() * maze.DirectionCount
}

// Contains reports whether v sits on a walkable cell with a valid facing.
func (s *Space) Contains(v Vertex) bool {
	return v.Facing.IsValid() && s.grid.IsWalkable(v.Cell)
}

// Index maps v to a dense index in [0, VertexCount). The four facings of a
// cell are adjacent. The result is meaningless when Contains(v) is false.
func (s *Space) Index(v Vertex) int {
	return s.grid.Index(v.Cell)*maze.DirectionCount + int(v.Facing)
}

// VertexAt is the inverse of Index.
func (s *Space) VertexAt(i int) Vertex {
	return Vertex{
		Cell:   s.grid.CellAt(i / maze.DirectionCount),
		Facing: maze.Direction(i % maze.DirectionCount),
	}
}

// Facings returns the four vertices of cell c in direction order.
func (s *Space) Facings(c maze.Cell) [maze.DirectionCount]Vertex {
	var out [maze.DirectionCount]Vertex
	for _, d := range maze.Directions() {
		out[d] = Vertex{Cell: c, Facing: d}
	}
	return out
}

// Neighbors returns the fused forward edges out of v: for every direction D
// with a walkable neighbour, an edge to (neighbour, D) weighing
// Turn×TurnDistance(v.Facing, D) + Step. Blocked or out-of-bounds directions
// produce no edge.
func (s *Space) Neighbors(v Vertex) []Edge {
	return s.AppendNeighbors(make([]Edge, 0, maze.DirectionCount), v)
}

// AppendNeighbors appends the edges of Neighbors(v) to dst and returns it.
func (s *Space) AppendNeighbors(dst []Edge, v Vertex) []Edge {
	for _, d := range maze.Directions() {
		n, ok := s.grid.Neighbor(v.Cell, d)
		if !ok {
			continue
		}
		dst = append(dst, Edge{
			To:     Vertex{Cell: n, Facing: d},
			Weight: s.costs.MoveWeight(v.Facing, d),
			Kind:   Move,
		})
	}
	return dst
}

// Rotations returns the in-place edges from v to the other three facings of
// the same cell, weighing Turn×TurnDistance.
func (s *Space) Rotations(v Vertex) []Edge {
	return s.AppendRotations(make([]Edge, 0, maze.DirectionCount-1), v)
}

// AppendRotations appends the edges of Rotations(v) to dst and returns it.
func (s *Space) AppendRotations(dst []Edge, v Vertex) []Edge {
	for _, d := range maze.Directions() {
		if d == v.Facing {
			continue
		}
		dst = append(dst, Edge{
			To:     Vertex{Cell: v.Cell, Facing: d},
			Weight: s.costs.RotateWeight(v.Facing, d),
			Kind:   Rotate,
		})
	}
	return dst
}

// Predecessors returns every vertex U with a forward or rotation edge into v,
// paired with that edge's weight. Edge.To holds U.
//
// A fused move into (C, F) always travels in direction F, so it comes from
// the cell behind C; any facing at that cell qualifies, paying for the turn
// to F. Rotations come from the other facings of C itself.
func (s *Space) Predecessors(v Vertex) []Edge {
	return s.AppendPredecessors(make([]Edge, 0, 2*maze.DirectionCount-1), v)
}

// AppendPredecessors appends the edges of Predecessors(v) to dst and returns it.
func (s *Space) AppendPredecessors(dst []Edge, v Vertex) []Edge {
	if prev, ok := s.grid.Neighbor(v.Cell, v.Facing.Opposite()); ok {
		for _, d := range maze.Directions() {
			dst = append(dst, Edge{
				To:     Vertex{Cell: prev, Facing: d},
				Weight: s.costs.MoveWeight(d, v.Facing),
				Kind:   Move,
			})
		}
	}
	for _, d := range maze.Directions() {
		if d == v.Facing {
			continue
		}
		dst = append(dst, Edge{
			To:     Vertex{Cell: v.Cell, Facing: d},
			Weight: s.costs.RotateWeight(d, v.Facing),
			Kind:   Rotate,
		})
	}
	return dst
}
