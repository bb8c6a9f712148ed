package statespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/turnmaze/maze"
)

// Sentinel errors returned by the statespace package.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to New.
	ErrNilGrid = errors.New("statespace: grid is nil")

	// ErrNegativeCost indicates a misconfigured cost table: a negative turn
	// cost or a step cost below one.
	ErrNegativeCost = errors.New("statespace: costs must be non-negative and step must be positive")
)

// Default weights of the reference puzzles.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Costs is the edge-weight table: Step per forward move, Turn per 90° rotation.
type Costs struct {
	Step int64
	Turn int64
}

// DefaultCosts returns {Step: 1, Turn: 1000}.
func DefaultCosts() Costs {
	return Costs{Step: DefaultStepCost, Turn: DefaultTurnCost}
}

// Validate reports ErrNegativeCost when Step < 1 or Turn < 0.
// A zero step would allow zero-weight cycles between cells.
func (c Costs) Validate() error {
	if c.Step < 1 || c.Turn < 0 {
		return fmt.Errorf("%w: step=%d turn=%d", ErrNegativeCost, c.Step, c.Turn)
	}
	return nil
}

// RotateWeight is the cost of turning in place from a to b.
func (c Costs) RotateWeight(a, b maze.Direction) int64 {
	return c.Turn * int64(maze.TurnDistance(a, b))
}

// MoveWeight is the fused cost of turning from facing to travel and then
// stepping once in direction travel.
func (c Costs) MoveWeight(facing, travel maze.Direction) int64 {
	return c.RotateWeight(facing, travel) + c.Step
}

// MaxEdgeWeight is the heaviest forward edge: two turns plus one step.
func (c Costs) MaxEdgeWeight() int64 {
	return 2*c.Turn + c.Step
}

// Vertex is the unit of search state: a cell and the direction faced there.
type Vertex struct {
	Cell   maze.Cell
	Facing maze.Direction
}

// String renders the vertex as "(x,y)/Facing".
func (v Vertex) String() string {
	return v.Cell.String() + "/" + v.Facing.String()
}

// EdgeKind tells forward moves and in-place rotations apart.
type EdgeKind uint8

const (
	// Move steps into a neighbouring cell, possibly turning first.
	Move EdgeKind = iota
	// Rotate turns in place without changing cell.
	Rotate
)

// Edge is a weighted arc of the oriented space. For Neighbors and Rotations
// To is the target vertex; for Predecessors To is the source vertex of the
// reversed arc.
type Edge struct {
	To     Vertex
	Weight int64
	Kind   EdgeKind
}
