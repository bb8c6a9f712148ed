// Package turnmaze finds the cheapest routes through grid mazes in which
// every step costs a little and every 90° turn costs a lot, and reports
// every tile that lies on at least one of those cheapest routes.
//
// What is a turn-penalised maze?
//
//	A rectangular grid of walls ('#') and floor ('.') with a start ('S') and
//	a goal ('E'). The walker starts on S facing East. Stepping forward costs
//	1, turning in place by 90° costs 1000. Facing matters: the same tile can
//	be cheap to enter heading East and expensive heading North.
//
// Under the hood the module is organized as a small pipeline:
//
//	maze/        cells, directions, the immutable Grid, the text parser, flood-fill regions
//	statespace/  oriented vertices (cell, facing), fused move edges, rotations, reverse edges
//	relax/       forward label-correcting relaxation (priority queue or stack worklist)
//	optimal/     backward reconstruction of every vertex on a cheapest route
//	solver/      one-call facade: Solve(puzzle) → cost, tiles
//	mazegen/     seeded random mazes for tests, benchmarks and the CLI
//	render/      text overlay with optimal tiles marked 'O', Graphviz DOT export
//	cmd/         the turnmaze command line tool
//
// Quick ASCII example:
//
//	#####
//	#OOO#      both routes around the pillar cost 3004:
//	#S#E#      turn, step, turn, step, step, turn, step
//	#OOO#      so all 8 floor tiles are optimal
//	#####
//
//	go install github.com/katalvlaran/turnmaze/cmd/turnmaze@latest
package turnmaze
