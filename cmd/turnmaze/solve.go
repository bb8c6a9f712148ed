package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/render"
	"github.com/katalvlaran/turnmaze/solver"
	"github.com/katalvlaran/turnmaze/statespace"
)

type solveFlags struct {
	facing   string
	turnCost int64
	stepCost int64
	worklist string
	render   bool
	color    string
	dot      string
	timeout  time.Duration
}

func newSolveCmd() *cobra.Command {
	flags := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the cheapest cost and the number of tiles on any cheapest route",
		Long: "Reads a maze ('#' wall, '.' floor, 'S' start, 'E' goal) from a file or stdin " +
			"and prints the minimum cost from S to E, followed by the number of tiles " +
			"lying on at least one route of that cost.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.facing, "facing", solver.DefaultFacing.String(), "initial facing of the start: north, east, south or west")
	f.Int64Var(&flags.turnCost, "turn-cost", statespace.DefaultTurnCost, "cost of one 90° turn")
	f.Int64Var(&flags.stepCost, "step-cost", statespace.DefaultStepCost, "cost of one step forward")
	f.StringVar(&flags.worklist, "worklist", relax.PriorityQueue.String(), "relaxation order: heap or stack")
	f.BoolVar(&flags.render, "render", false, "draw the maze with optimal tiles marked 'O'")
	f.StringVar(&flags.color, "color", colorAuto, "colour the rendering: auto, always or never")
	f.StringVar(&flags.dot, "dot", "", "write the optimal state graph in Graphviz DOT format to this file")
	f.DurationVar(&flags.timeout, "timeout", 0, "abort the search after this long (0 disables)")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, flags *solveFlags) error {
	out := cmd.OutOrStdout()

	// 1) Flags
	facing, err := maze.ParseDirection(flags.facing)
	if err != nil {
		return err
	}
	worklist, err := relax.ParseWorklist(flags.worklist)
	if err != nil {
		return err
	}
	colored, err := useColor(flags.color, out)
	if err != nil {
		return err
	}

	// 2) Input
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	p, err := readPuzzle(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	log.Debugf("turnmaze: read %s: %dx%d grid, %d walkable cells, start %v, goal %v",
		name, p.Grid.Width(), p.Grid.Height(), p.Grid.WalkableCount(), p.Start, p.Goal)

	// 3) Solve
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}
	began := time.Now()
	res, err := solver.Solve(p,
		solver.WithContext(ctx),
		solver.WithFacing(facing),
		solver.WithCosts(statespace.Costs{Step: flags.stepCost, Turn: flags.turnCost}),
		solver.WithWorklist(worklist),
	)
	if err != nil {
		return err
	}
	if res.Table != nil {
		st := res.Table.Stats()
		log.Debugf("turnmaze: solved in %s with %s worklist (pops=%d stale=%d pushes=%d improvements=%d)",
			time.Since(began), worklist, st.Pops, st.Stale, st.Pushes, st.Improvements)
	} else {
		log.Debugf("turnmaze: goal outside the start region, solved in %s", time.Since(began))
	}

	// 4) Report
	if res.Reachable {
		fmt.Fprintf(out, "cost: %d\ntiles: %d\n", res.MinCost, res.Count())
	} else {
		log.Warningf("turnmaze: %s", res.Err())
		fmt.Fprintf(out, "cost: unreachable\ntiles: 0\n")
	}

	if flags.render {
		if width, ok := terminalWidth(out); ok && width < p.Grid.Width() {
			log.Warningf("turnmaze: maze is %d columns wide, terminal only %d", p.Grid.Width(), width)
		}
		if err := render.Text(out, p, res.Cells, render.WithColor(colored)); err != nil {
			return err
		}
	}

	if flags.dot != "" {
		if err := writeDOT(flags.dot, res); err != nil {
			return err
		}
		log.Infof("turnmaze: wrote optimal state graph to %s", flags.dot)
	}
	return nil
}

// readPuzzle parses the named file, or in when name is "-".
func readPuzzle(in io.Reader, name string) (*maze.Puzzle, error) {
	if name == "-" {
		p, err := maze.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return p, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// writeDOT exports the optimal vertices of res to path.
func writeDOT(path string, res *solver.Result) error {
	if !res.Reachable {
		return fmt.Errorf("no DOT graph for %s", strings.TrimPrefix(res.Err().Error(), "solver: "))
	}
	vs, err := res.Vertices()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.DOT(f, res.Table, vs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
