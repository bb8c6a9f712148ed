// Package solver_test provides runnable examples for Solve.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/solver"
	"github.com/katalvlaran/turnmaze/statespace"
)

// ExampleSolve solves the 15×15 reference maze with default costs.
func ExampleSolve() {
	// 1) Parse the puzzle text.
	p, err := maze.ParseString(example15)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve from S facing East with step 1 and turn 1000.
	res, err := solver.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the cheapest cost and the number of tiles on any cheapest route.
	fmt.Printf("cost=%d tiles=%d\n", res.MinCost, res.Count())
	// Output: cost=7036 tiles=45
}

// ExampleSolve_customCosts makes turning cheap, so the shortest walk wins.
func ExampleSolve_customCosts() {
	p, _ := maze.ParseString("#####\n#...#\n#S#E#\n#...#\n#####\n")

	res, err := solver.Solve(p,
		solver.WithFacing(maze.North),
		solver.WithCosts(statespace.Costs{Step: 1, Turn: 1}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%d tiles=%d\n", res.MinCost, res.Count())
	fmt.Println(res.Sorted())
	// Output:
	// cost=6 tiles=5
	// [(1,1) (2,1) (3,1) (1,2) (3,2)]
}

// ExampleResult_Err shows how an unreachable goal is reported.
func ExampleResult_Err() {
	p, _ := maze.ParseString("#####\n#S#E#\n#####\n")

	res, err := solver.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Reachable, res.Count(), res.Err())
	// Output: false 0 solver: goal is unreachable
}
