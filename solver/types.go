package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/optimal"
	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/statespace"
)

var (
	// ErrNilPuzzle indicates a nil puzzle or a puzzle without a grid.
	ErrNilPuzzle = errors.New("solver: puzzle is nil")

	// ErrUnreachableGoal reports that no route connects start and goal.
	ErrUnreachableGoal = errors.New("solver: goal is unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// DefaultFacing is the initial facing of the start when none is given.
const DefaultFacing = maze.East

// Options configures Solve.
type Options struct {
	Ctx         context.Context
	Facing      maze.Direction
	Costs       statespace.Costs
	Worklist    relax.Worklist
	RegionCheck bool

	// forwarded verbatim to relax.Relax after the options above
	relaxOpts []relax.Option

	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - Facing East
//   - DefaultCosts (step 1, turn 1000)
//   - PriorityQueue worklist
//   - region check enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Facing:      DefaultFacing,
		Costs:       statespace.DefaultCosts(),
		Worklist:    relax.PriorityQueue,
		RegionCheck: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFacing sets the start facing. Invalid directions surface as
// ErrOptionViolation.
func WithFacing(d maze.Direction) Option {
	return func(o *Options) {
		if !d.IsValid() {
			o.err = fmt.Errorf("%w: facing %v", ErrOptionViolation, d)
			return
		}
		o.Facing = d
	}
}

// WithCosts overrides step and turn costs. They are validated by Solve.
func WithCosts(c statespace.Costs) Option {
	return func(o *Options) {
		o.Costs = c
	}
}

// WithWorklist selects the relaxation order.
func WithWorklist(w relax.Worklist) Option {
	return func(o *Options) {
		o.Worklist = w
	}
}

// WithRegionCheck toggles the connectivity pre-check.
func WithRegionCheck(enabled bool) Option {
	return func(o *Options) {
		o.RegionCheck = enabled
	}
}

// WithRelaxOptions appends options passed to relax.Relax, e.g. hooks or
// relax.WithMaxCost.
func WithRelaxOptions(opts ...relax.Option) Option {
	return func(o *Options) {
		o.relaxOpts = append(o.relaxOpts, opts...)
	}
}

// Result is the outcome of Solve.
type Result struct {
	// MinCost is the cheapest cost to reach the goal, relax.Infinity when
	// the goal is unreachable.
	MinCost int64

	// Reachable reports whether any route reaches the goal.
	Reachable bool

	// Cells holds every cell on at least one minimum-cost route.
	Cells mapset.Set[maze.Cell]

	// Table is the forward cost table; nil when the region check proved the
	// goal unreachable before relaxation.
	Table *relax.Table

	// Space is the oriented state space the puzzle was solved on.
	Space *statespace.Space

	// Goal is the goal cell the result was computed for.
	Goal maze.Cell
}

// Count returns the number of cells on minimum-cost routes.
func (r *Result) Count() int {
	return r.Cells.Size()
}

// Err returns ErrUnreachableGoal for an unreachable goal and nil otherwise.
func (r *Result) Err() error {
	if !r.Reachable {
		return ErrUnreachableGoal
	}
	return nil
}

// Sorted returns the optimal cells in row-major order.
func (r *Result) Sorted() []maze.Cell {
	return optimal.Sorted(r.Cells)
}

// Vertices returns the oriented states on minimum-cost routes.
func (r *Result) Vertices() (mapset.Set[statespace.Vertex], error) {
	if !r.Reachable {
		return mapset.New[statespace.Vertex](), ErrUnreachableGoal
	}
	return optimal.Collect(r.Table, r.Goal, r.MinCost)
}
