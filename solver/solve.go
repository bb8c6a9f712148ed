package solver

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/optimal"
	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/statespace"
)

// Solve finds the minimum cost from p.Start (with the configured facing) to
// p.Goal and every cell on a route achieving it.
//
// Steps:
//  1. Validate options, the puzzle and the costs.
//  2. Optionally flood-fill from the start; a goal outside that region is
//     reported unreachable without relaxing.
//  3. relax.Relax from (Start, Facing).
//  4. optimal.Cells from the goal.
//
// The returned error is non-nil only for invalid input or cancellation; an
// unreachable goal is reported through Result.Err.
func Solve(p *maze.Puzzle, opts ...Option) (*Result, error) {
	// 1) Options and inputs
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if p == nil || p.Grid == nil {
		return nil, ErrNilPuzzle
	}
	space, err := statespace.New(p.Grid, cfg.Costs)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	res := &Result{
		MinCost: relax.Infinity,
		Cells:   mapset.New[maze.Cell](),
		Space:   space,
		Goal:    p.Goal,
	}

	// 2) Cheap connectivity check
	if cfg.RegionCheck && p.Grid.IsWalkable(p.Start) && !p.Grid.Connected(p.Start, p.Goal) {
		return res, nil
	}

	// 3) Forward relaxation
	ropts := make([]relax.Option, 0, 2+len(cfg.relaxOpts))
	ropts = append(ropts, relax.WithContext(cfg.Ctx), relax.WithWorklist(cfg.Worklist))
	ropts = append(ropts, cfg.relaxOpts...)
	tbl, err := relax.Relax(space, statespace.Vertex{Cell: p.Start, Facing: cfg.Facing}, ropts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	res.Table = tbl

	// 4) Backward reconstruction
	cells, best, err := optimal.Cells(tbl, p.Goal)
	switch {
	case errors.Is(err, optimal.ErrUnreachable):
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("solver: %w", err)
	}
	res.MinCost = best
	res.Cells = cells
	res.Reachable = true

	return res, nil
}
