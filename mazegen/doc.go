// Package mazegen builds seeded random mazes in the puzzle format understood
// by package maze. It provides fixtures for property tests, benchmarks and the
// `turnmaze generate` command.
//
// Model:
//
//   - A w×h maze of rooms is drawn on a (2w+1)×(2h+1) character grid: rooms sit
//     on odd coordinates, walls between them on the mixed ones, and the border
//     is solid.
//   - Passages are carved by a randomized depth-first backtracker, so the
//     result is a perfect maze (exactly one route between any two rooms).
//   - WithLoopChance(p) then knocks down each remaining inner wall with
//     probability p, creating alternative routes and cost ties.
//   - The start is the bottom-left room, the goal the top-right room.
//
// Determinism:
//
//   - Generation consumes randomness only from the configured *rand.Rand, so a
//     fixed WithSeed value always yields the same maze.
//
// Errors:
//
//   - ErrTooSmall:           w or h below 1, or a single room (start = goal).
//   - ErrNeedRandSource:     neither WithSeed nor WithRand was given.
//   - ErrInvalidProbability: WithLoopChance outside [0, 1].
package mazegen
