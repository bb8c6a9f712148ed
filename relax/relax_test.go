// Package relax_test validates the forward relaxation: golden costs, the
// cross-facing propagation, both worklist strategies, options and validation.
package relax_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/statespace"
)

const corridor = "" +
	"######\n" +
	"#S..E#\n" +
	"######\n"

const example15 = "" +
	"###############\n" +
	"#.......#....E#\n" +
	"#.#.###.#.###.#\n" +
	"#.....#.#...#.#\n" +
	"#.###.#####.#.#\n" +
	"#.#.#.......#.#\n" +
	"#.#.#####.###.#\n" +
	"#...........#.#\n" +
	"###.#.#####.#.#\n" +
	"#...#.....#.#.#\n" +
	"#.#.#.###.#.#.#\n" +
	"#.....#...#.#.#\n" +
	"#.###.#.#.#.#.#\n" +
	"#S..#.....#...#\n" +
	"###############\n"

const example17 = "" +
	"#################\n" +
	"#...#...#...#..E#\n" +
	"#.#.#.#.#.#.#.#.#\n" +
	"#.#.#.#...#...#.#\n" +
	"#.#.#.#.###.#.#.#\n" +
	"#...#.#.#.....#.#\n" +
	"#.#.#.#.#.#####.#\n" +
	"#.#...#.#.#.....#\n" +
	"#.#.#####.#.###.#\n" +
	"#.#.#.......#...#\n" +
	"#.#.###.#####.###\n" +
	"#.#.#...#.....#.#\n" +
	"#.#.#.#####.###.#\n" +
	"#.#.#.........#.#\n" +
	"#.#.#.#########.#\n" +
	"#S#.............#\n" +
	"#################\n"

// setup parses text and relaxes from its start facing the given direction.
func setup(t *testing.T, text string, facing maze.Direction, opts ...relax.Option) (*maze.Puzzle, *relax.Table) {
	t.Helper()
	p, err := maze.ParseString(text)
	require.NoError(t, err)
	s, err := statespace.New(p.Grid, statespace.DefaultCosts())
	require.NoError(t, err)
	tbl, err := relax.Relax(s, statespace.Vertex{Cell: p.Start, Facing: facing}, opts...)
	require.NoError(t, err)
	return p, tbl
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestRelax_NilSpace(t *testing.T) {
	_, err := relax.Relax(nil, statespace.Vertex{})
	assert.ErrorIs(t, err, relax.ErrNilSpace)
}

func TestRelax_BadStart(t *testing.T) {
	p, err := maze.ParseString(corridor)
	require.NoError(t, err)
	s, err := statespace.New(p.Grid, statespace.DefaultCosts())
	require.NoError(t, err)

	_, err = relax.Relax(s, statespace.Vertex{Cell: maze.Cell{X: 0, Y: 0}, Facing: maze.East})
	assert.ErrorIs(t, err, relax.ErrBadStart)
	_, err = relax.Relax(s, statespace.Vertex{Cell: p.Start, Facing: maze.Direction(9)})
	assert.ErrorIs(t, err, relax.ErrBadStart)
}

func TestRelax_OptionViolation(t *testing.T) {
	p, err := maze.ParseString(corridor)
	require.NoError(t, err)
	s, err := statespace.New(p.Grid, statespace.DefaultCosts())
	require.NoError(t, err)

	_, err = relax.Relax(s, statespace.Vertex{Cell: p.Start}, relax.WithWorklist(relax.Worklist(42)))
	assert.ErrorIs(t, err, relax.ErrOptionViolation)

	assert.Panics(t, func() { relax.WithMaxCost(-1) })
}

func TestRelax_CancelledContext(t *testing.T) {
	p, err := maze.ParseString(example15)
	require.NoError(t, err)
	s, err := statespace.New(p.Grid, statespace.DefaultCosts())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = relax.Relax(s, statespace.Vertex{Cell: p.Start, Facing: maze.East}, relax.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Costs
// ------------------------------------------------------------------------

func TestRelax_StraightCorridor(t *testing.T) {
	p, tbl := setup(t, corridor, maze.East)
	best, ok := tbl.Best(p.Goal)
	require.True(t, ok)
	assert.Equal(t, int64(3), best)
	assert.Equal(t, int64(0), tbl.Dist(tbl.Start()))
}

func TestRelax_PerpendicularStart(t *testing.T) {
	p, tbl := setup(t, corridor, maze.North)
	best, ok := tbl.Best(p.Goal)
	require.True(t, ok)
	assert.Equal(t, int64(1003), best)
}

func TestRelax_BackwardsStart(t *testing.T) {
	p, tbl := setup(t, corridor, maze.West)
	best, _ := tbl.Best(p.Goal)
	assert.Equal(t, int64(2003), best)
}

// TestRelax_CrossFacingAtStart checks the start cell's other facings are
// seeded at the pure turning cost.
func TestRelax_CrossFacingAtStart(t *testing.T) {
	p, tbl := setup(t, corridor, maze.East)
	f := tbl.Space().Facings(p.Start)
	assert.Equal(t, int64(1000), tbl.Dist(f[maze.North]))
	assert.Equal(t, int64(0), tbl.Dist(f[maze.East]))
	assert.Equal(t, int64(1000), tbl.Dist(f[maze.South]))
	assert.Equal(t, int64(2000), tbl.Dist(f[maze.West]))
}

// TestRelax_CrossFacingAtGoal checks every facing at a reached cell is
// at most the arrival cost plus the turn to it.
func TestRelax_CrossFacingAtGoal(t *testing.T) {
	p, tbl := setup(t, corridor, maze.East)
	f := tbl.Space().Facings(p.Goal)
	assert.Equal(t, int64(3), tbl.Dist(f[maze.East]))
	assert.Equal(t, int64(1003), tbl.Dist(f[maze.North]))
	assert.Equal(t, int64(1003), tbl.Dist(f[maze.South]))
	assert.Equal(t, int64(2003), tbl.Dist(f[maze.West]))
}

func TestRelax_Unreachable(t *testing.T) {
	p, tbl := setup(t, ""+
		"#######\n"+
		"#S.#.E#\n"+
		"#######\n", maze.East)
	best, ok := tbl.Best(p.Goal)
	assert.False(t, ok)
	assert.Equal(t, relax.Infinity, best)
	for _, v := range tbl.Space().Facings(p.Goal) {
		assert.False(t, tbl.Reached(v))
	}
}

func TestRelax_Golden(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"Example15", example15, 7036},
		{"Example17", example17, 11048},
		{"Small", "#####\n#...#\n#S#E#\n#...#\n#####\n", 3004},
	}
	for _, tc := range cases {
		for _, wl := range []relax.Worklist{relax.PriorityQueue, relax.Stack} {
			t.Run(tc.name+"/"+wl.String(), func(t *testing.T) {
				p, tbl := setup(t, tc.text, maze.East, relax.WithWorklist(wl))
				best, ok := tbl.Best(p.Goal)
				require.True(t, ok)
				assert.Equal(t, tc.want, best)
			})
		}
	}
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

// TestRelax_Monotonicity: every reached cost is non-negative and only the
// start vertex costs 0.
func TestRelax_Monotonicity(t *testing.T) {
	_, tbl := setup(t, example15, maze.East)
	zeros := 0
	tbl.Each(func(v statespace.Vertex, d int64) {
		assert.GreaterOrEqual(t, d, int64(0), "%v", v)
		if d == 0 {
			zeros++
			assert.Equal(t, tbl.Start(), v)
		}
	})
	assert.Equal(t, 1, zeros)
}

// TestRelax_EdgeConsistency: no forward or rotation edge can still improve
// its target, i.e. the table is a fixed point of relaxation.
func TestRelax_EdgeConsistency(t *testing.T) {
	_, tbl := setup(t, example17, maze.East)
	s := tbl.Space()
	tbl.Each(func(v statespace.Vertex, d int64) {
		for _, e := range append(s.Neighbors(v), s.Rotations(v)...) {
			assert.LessOrEqual(t, tbl.Dist(e.To), d+e.Weight, "%v→%v", v, e.To)
		}
	})
}

// TestRelax_Idempotent: repeated runs and both worklists agree exactly.
func TestRelax_Idempotent(t *testing.T) {
	for _, text := range []string{corridor, example15, example17} {
		_, a := setup(t, text, maze.East)
		_, b := setup(t, text, maze.East)
		_, c := setup(t, text, maze.East, relax.WithWorklist(relax.Stack))
		assert.True(t, a.Equal(b))
		assert.True(t, a.Equal(c))
		assert.Equal(t, a.Len(), c.Len())
	}
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestRelax_MaxCost(t *testing.T) {
	p, tbl := setup(t, corridor, maze.East, relax.WithMaxCost(2))
	_, ok := tbl.Best(p.Goal)
	assert.False(t, ok)
	assert.Equal(t, int64(2), tbl.Dist(statespace.Vertex{Cell: maze.Cell{X: 3, Y: 1}, Facing: maze.East}))
}

func TestRelax_Hooks(t *testing.T) {
	var improved, settled int
	_, tbl := setup(t, example15, maze.East,
		relax.WithOnImprove(func(statespace.Vertex, int64) { improved++ }),
		relax.WithOnSettle(func(statespace.Vertex, int64) { settled++ }),
	)
	st := tbl.Stats()
	assert.Equal(t, st.Improvements, improved)
	assert.Equal(t, st.Pops-st.Stale, settled)
	assert.Equal(t, st.Pushes, st.Pops, "worklist drained")
	assert.Equal(t, tbl.Len(), settled, "heap settles every reached vertex once")
}

func TestParseWorklist(t *testing.T) {
	w, err := relax.ParseWorklist("stack")
	require.NoError(t, err)
	assert.Equal(t, relax.Stack, w)
	w, err = relax.ParseWorklist("heap")
	require.NoError(t, err)
	assert.Equal(t, relax.PriorityQueue, w)
	_, err = relax.ParseWorklist("fifo")
	assert.ErrorIs(t, err, relax.ErrOptionViolation)
}
