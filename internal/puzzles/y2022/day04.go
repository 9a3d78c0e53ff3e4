package y2022

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 4, Title: "Camp Cleanup", Solve: solveDay04})
}

func solveDay04(_ context.Context, input string) (puzzle.Answer, error) {
	contained, overlapping := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		nums := aoc.Uints(line)
		if len(nums) != 4 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil)
		}
		a, b := aoc.Span(nums[0], nums[1]), aoc.Span(nums[2], nums[3])
		if a.Covers(b) || b.Covers(a) {
			contained++
		}
		if a.Overlaps(b) {
			overlapping++
		}
	}
	return puzzle.NewAnswer(contained, overlapping), nil
}
