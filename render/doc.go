// Package render draws solved puzzles for humans.
//
// Text writes the puzzle grid with every cell on a minimum-cost route marked
// 'O' (start and goal keep their 'S' and 'E'). Styling via gookit/color is
// opt-in with WithColor; when the output does not support colour, gookit
// strips the codes again.
//
// DOT exports the optimal part of the oriented state space as a Graphviz
// digraph: one node per optimal (cell, facing) state and one edge per tight
// forward move or rotation between them, labelled with its weight.
package render
