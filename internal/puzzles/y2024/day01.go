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
	registry.Register(puzzle.Solution{Year: 2024, Day: 1, Title: "Historian Hysteria", Solve: solveDay01})
}

func solveDay01(_ context.Context, input string) (puzzle.Answer, error) {
	var left, right []int
	for i, line := range aoc.NonEmptyLines(input) {
		nums, err := aoc.Fields(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		if len(nums) != 2 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected two location IDs")
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	if len(left) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}

	slices.Sort(left)
	slices.Sort(right)
	distance := 0
	for i := range left {
		distance += aoc.Abs(left[i] - right[i])
	}

	counts := aoc.CountAll(right)
	similarity := 0
	for _, id := range left {
		similarity += id * counts[id]
	}
	return puzzle.NewAnswer(distance, similarity), nil
}
