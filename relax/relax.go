// Package relax implements the forward cost relaxation over the oriented
// maze state space.
//
// Notes on implementation choices:
//
//   - The table is a dense []int64 indexed by statespace.Space.Index, so a
//     lookup is one multiplication away from the cell index.
//   - Items are pushed only on strict improvement; a popped item whose cost
//     is above the current table entry is stale and skipped.
//   - Edge weights are re-checked for negativity during relaxation; the space
//     validates its costs, so this only trips on programming errors.
package relax

import (
	"fmt"

	"github.com/katalvlaran/turnmaze/statespace"
)

// Relax computes the minimum cost from start to every vertex of s.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. s must be non-nil (ErrNilSpace).
//  3. start must sit on a walkable cell with a valid facing (ErrBadStart).
//  4. The space's costs must be valid (statespace.ErrNegativeCost).
//
// On success the returned Table holds Infinity for every vertex that cannot be
// reached (or costs more than MaxCost). A goal whose four facings are all
// Infinity is unreachable.
func Relax(s *statespace.Space, start statespace.Vertex, opts ...Option) (*Table, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if s == nil {
		return nil, ErrNilSpace
	}
	if !s.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrBadStart, start)
	}
	if err := s.Costs().Validate(); err != nil {
		return nil, err
	}

	// 3) Run
	r := &runner{
		space:   s,
		options: cfg,
		table:   newTable(s, start),
		wl:      newWorklist(cfg.Worklist),
		buf:     make([]statespace.Edge, 0, 4),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table, nil
}

// runner holds the mutable state for a single relaxation.
type runner struct {
	space   *statespace.Space
	options Options
	table   *Table
	wl      worklist
	buf     []statespace.Edge // reused edge buffer
}

// init puts the start vertex at cost 0 and propagates that cost to the other
// facings of the start cell.
func (r *runner) init() {
	start := r.table.start
	r.set(start, 0)
	r.crossFacings(start, 0)
}

// process drains the worklist. For each popped vertex V with cost d it tries
// every fused forward edge (V', w); an edge improves V' when d+w beats its
// current cost.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for {
		// cancellation check (once per pop)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		it, ok := r.wl.pop()
		if !ok {
			return nil
		}
		r.table.stats.Pops++

		// Skip stale entries left behind by lazy decrease-key / re-queuing.
		if it.cost > r.table.dist[r.space.Index(it.v)] {
			r.table.stats.Stale++
			continue
		}
		r.options.OnSettle(it.v, it.cost)

		r.buf = r.space.AppendNeighbors(r.buf[:0], it.v)
		for _, e := range r.buf {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%d", statespace.ErrNegativeCost, it.v, e.To, e.Weight)
			}
			nd := it.cost + e.Weight
			if !r.set(e.To, nd) {
				continue
			}
			// A facing at this cell improved: the other three may now be
			// cheapest by turning here.
			r.crossFacings(e.To, nd)
		}
	}
}

// crossFacings propagates cost d at v to the other facings of v's cell.
// One level suffices: turn distances obey the triangle inequality, so turning
// via an intermediate facing is never cheaper.
func (r *runner) crossFacings(v statespace.Vertex, d int64) {
	for _, e := range r.space.Rotations(v) {
		r.set(e.To, d+e.Weight)
	}
}

// set lowers v's cost to d and queues v when d is a strict improvement within
// MaxCost. It reports whether the table changed.
func (r *runner) set(v statespace.Vertex, d int64) bool {
	if d > r.options.MaxCost {
		return false
	}
	idx := r.space.Index(v)
	if d >= r.table.dist[idx] {
		return false
	}
	r.table.dist[idx] = d
	r.table.stats.Improvements++
	r.options.OnImprove(v, d)

	r.wl.push(item{v: v, cost: d})
	r.table.stats.Pushes++
	return true
}
