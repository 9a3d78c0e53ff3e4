package y2022

import (
	"context"
	"slices"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 1, Title: "Calorie Counting", Solve: solveDay01})
}

func solveDay01(_ context.Context, input string) (puzzle.Answer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}

	totals := make([]int, 0, len(blocks))
	for _, block := range blocks {
		total := 0
		for _, line := range block {
			n, err := aoc.Atoi(line)
			if err != nil {
				return puzzle.Answer{}, err
			}
			total += n
		}
		totals = append(totals, total)
	}

	slices.Sort(totals)
	slices.Reverse(totals)
	return puzzle.NewAnswer(totals[0], aoc.Sum(totals[:min(3, len(totals))])), nil
}
