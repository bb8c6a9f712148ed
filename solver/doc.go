// Package solver is the entry point most callers want: given a parsed puzzle
// it runs the forward relaxation from the start, then reconstructs every cell
// lying on a minimum-cost route to the goal.
//
//	p, _ := maze.ParseString(text)
//	res, err := solver.Solve(p)            // start facing East, step 1, turn 1000
//	if err != nil { ... }                  // malformed input or cancelled context
//	if err := res.Err(); err != nil { ... } // ErrUnreachableGoal
//	fmt.Println(res.MinCost, res.Count())
//
// An unreachable goal is a result, not a failure: Solve returns a Result with
// Reachable=false, MinCost=relax.Infinity and an empty cell set, and
// Result.Err reports ErrUnreachableGoal.
//
// Options:
//
//   - WithFacing(d):       initial facing of the start (default East).
//   - WithCosts(c):        step/turn costs (default statespace.DefaultCosts).
//   - WithWorklist(w):     relax.PriorityQueue (default) or relax.Stack.
//   - WithContext(ctx):    cancellation, checked once per worklist pop.
//   - WithRegionCheck(b):  flood-fill the grid first and skip relaxation when
//     start and goal are disconnected (default true).
//   - WithRelaxOptions(o): extra relax options such as hooks.
package solver
