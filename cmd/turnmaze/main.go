// Command turnmaze solves turn-penalised grid mazes.
//
//	turnmaze solve maze.txt
//	turnmaze solve --facing north --turn-cost 10 --render - < maze.txt
//	turnmaze generate --width 20 --height 10 --seed 7 --loops 0.1
package main

import (
	"os"
)

func main() {
	err := newRootCmd().Execute()
	stopLogging()
	if err != nil {
		os.Exit(1)
	}
}
