// Package statespace turns a maze.Grid into the oriented search graph used by
// the forward relaxation and the optimal-path reconstruction.
//
// A Vertex is a (cell, facing) pair, so the space holds exactly 4×|cells|
// vertices. Two arrivals at the same cell facing different ways are different
// vertices because their future turn costs differ.
//
// Edges:
//
//   - Forward ("fused") edges: from (C, A) to (C+D, D) for every direction D
//     whose neighbour is walkable, weight Turn×TurnDistance(A, D) + Step.
//     Turning and stepping are folded into one edge.
//   - Rotation edges: from (C, A) to (C, B) for every B ≠ A, weight
//     Turn×TurnDistance(A, B). These carry a cost improvement at one facing to
//     the other three facings of the same cell.
//   - Predecessors: the reverse view of both edge kinds, used to walk back
//     from the goal along cost-consistent edges.
//
// With DefaultCosts every forward edge weighs between 1 and 2001 and every
// rotation edge 1000 or 2000. All weights are non-negative, which is what the
// relaxation relies on.
package statespace
