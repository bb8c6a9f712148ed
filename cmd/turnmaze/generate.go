package main

import (
	"fmt"
	"time"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnmaze/mazegen"
)

type generateFlags struct {
	width  int
	height int
	seed   int64
	loops  float64
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random maze in the format read by solve",
		Long: "Carves a perfect maze of width×height rooms with a depth-first backtracker, " +
			"then opens each remaining inner wall with probability --loops. " +
			"The start is the bottom-left room and the goal the top-right room.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := flags.seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
				log.Infof("turnmaze: using seed %d", seed)
			}
			p, err := mazegen.Generate(flags.width, flags.height,
				mazegen.WithSeed(seed),
				mazegen.WithLoopChance(flags.loops),
			)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), p.String())
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.width, "width", 7, "maze width in rooms")
	f.IntVar(&flags.height, "height", 7, "maze height in rooms")
	f.Int64Var(&flags.seed, "seed", 0, "random seed (default: current time)")
	f.Float64Var(&flags.loops, "loops", 0, "probability of opening each remaining inner wall, in [0, 1]")
	return cmd
}
