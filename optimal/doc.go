// Package optimal reconstructs the set of cells lying on at least one
// minimum-cost route, from a frozen relax.Table.
//
// Algorithm:
//
//  1. best = min over the goal cell's four facings. If it is Infinity the goal
//     is unreachable and the result is an empty set with ErrUnreachable.
//  2. Seed a stack with every goal facing whose cost equals best. Several may
//     tie; all of them are required.
//  3. Pop V with cost d. For every predecessor edge (U, w) of V keep U only
//     when Dist(U) + w == d exactly, guarded by a visited set so equal-cost
//     plateaus are expanded once.
//  4. Project the collected vertices onto their cells.
//
// The table is never mutated and relaxation is never re-run: Collect is a pure
// function of (table, goal, best).
//
// Complexity: O(V) time and memory with V = 4×cells; each vertex is pushed at
// most once and has at most 7 predecessors.
package optimal
