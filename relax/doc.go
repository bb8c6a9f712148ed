// Package relax computes the minimum accumulated cost from a start vertex to
// every reachable vertex of a statespace.Space.
//
// Overview:
//
//   - The search is a label-correcting relaxation: a vertex is (re)inserted into
//     the worklist each time its known cost strictly improves.
//   - Every improvement of one facing at a cell is immediately propagated to the
//     other three facings of that cell at cost + Turn×TurnDistance, so the table
//     reflects true minima across all orientations.
//   - The start vertex costs 0; its cell's other facings are seeded through the
//     same cross-facing propagation.
//
// Worklists:
//
//   - PriorityQueue (default): a binary min-heap ordered by cost with lazy
//     decrease-key. Each vertex is expanded once at its final cost, giving
//     Dijkstra's O(E log V).
//   - Stack: LIFO with re-queuing on improvement. Correct because all weights are
//     non-negative, but a vertex may be expanded several times.
//
// Both strategies converge to identical tables.
//
// Options:
//
//   - WithWorklist(PriorityQueue|Stack)
//   - WithContext(ctx): cancellation checked once per worklist pop.
//   - WithMaxCost(c): vertices costing more than c are left unreached.
//   - WithOnImprove / WithOnSettle: observation hooks.
//
// Errors (sentinel):
//
//   - ErrNilSpace:        the space pointer is nil.
//   - ErrBadStart:        the start vertex is blocked, outside or has an invalid facing.
//   - ErrOptionViolation: an option received a meaningless value.
//   - statespace.ErrNegativeCost: a negative edge weight reached the relaxation.
//   - ctx.Err() when the context is cancelled.
//
// Complexity (PriorityQueue):
//
//   - Time:  O(V log V) with V = 4×cells and at most 7 out-edges per vertex.
//   - Space: O(V) for the dense table plus O(V) heap entries in the worst case.
//
// Thread safety:
//
//   - Relax owns its worklist and table while running; the returned Table is
//     read-only and may be shared between goroutines.
package relax
