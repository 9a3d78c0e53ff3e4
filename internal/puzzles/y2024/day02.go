package y2024

import (
	"context"
	"slices"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 2, Title: "Red-Nosed Reports", Solve: solveDay02})
}

// reportSafe reports whether levels move strictly one way in steps of 1-3.
func reportSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	dir := aoc.Sign(levels[1] - levels[0])
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if aoc.Sign(d) != dir || aoc.Abs(d) < 1 || aoc.Abs(d) > 3 {
			return false
		}
	}
	return true
}

// dampenedSafe allows a single level to be dropped.
func dampenedSafe(levels []int) bool {
	if reportSafe(levels) {
		return true
	}
	for i := range levels {
		if reportSafe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}

func solveDay02(_ context.Context, input string) (puzzle.Answer, error) {
	safe, dampened := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		levels, err := aoc.Fields(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		if reportSafe(levels) {
			safe++
		}
		if dampenedSafe(levels) {
			dampened++
		}
	}
	return puzzle.NewAnswer(safe, dampened), nil
}
