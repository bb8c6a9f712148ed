// Package maze models a rectangular grid of walkable and blocked cells, the
// compass directions used to move across it, and the textual puzzle format
// that names a start and a goal cell.
//
// What:
//
//   - Cell is a plain (X, Y) coordinate; X grows East, Y grows South.
//   - Direction is one of North, East, South, West in that fixed cyclic order.
//     TurnDistance counts the 90° rotations between two directions (0, 1 or 2).
//   - Grid is immutable once built and answers "walkable neighbour of C in
//     direction D" in O(1).
//   - Puzzle couples a Grid with a Start and a Goal cell; Parse reads it from
//     text where '#' is a wall, '.' is floor, 'S' is the start and 'E' the goal.
//
// Why:
//
//   - The search layers (statespace, relax, optimal) only ever need
//     IsWalkable / Neighbor lookups; keeping the model tiny keeps those layers
//     generic.
//   - Malformed input (ragged rows, missing start, unknown runes) is rejected
//     here, before any search runs.
//
// Complexity:
//
//   - NewGrid, Parse: O(W×H) time and memory.
//   - Neighbor, IsWalkable, InBounds: O(1).
//   - Region: O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrInvalidRune:     a character outside "#.SE".
//   - ErrNoStart / ErrNoGoal:               missing 'S' / 'E'.
//   - ErrDuplicateStart / ErrDuplicateGoal: more than one 'S' / 'E'.
//   - ErrUnknownDirection: ParseDirection received an unknown name.
package maze
