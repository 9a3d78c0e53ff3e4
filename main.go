// Command aoc runs the Advent of Code solutions.
package main

import (
	"os"

	"github.com/conneroisu/adventofcode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
