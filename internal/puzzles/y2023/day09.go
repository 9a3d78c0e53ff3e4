package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 9, Title: "Mirage Maintenance", Solve: solveDay09})
}

// extrapolate returns the values before and after the sequence by repeated
// differencing.
func extrapolate(seq []int) (prev, next int) {
	var firsts, lasts []int
	cur := seq
	for {
		allZero := true
		for _, v := range cur {
			if v != 0 {
				allZero = false
				break
			}
		}
		if allZero || len(cur) == 0 {
			break
		}
		firsts = append(firsts, cur[0])
		lasts = append(lasts, cur[len(cur)-1])
		diff := make([]int, len(cur)-1)
		for i := range diff {
			diff[i] = cur[i+1] - cur[i]
		}
		cur = diff
	}
	for i := len(firsts) - 1; i >= 0; i-- {
		prev = firsts[i] - prev
		next += lasts[i]
	}
	return prev, next
}

func solveDay09(_ context.Context, input string) (puzzle.Answer, error) {
	backward, forward := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		seq, err := aoc.Fields(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		prev, next := extrapolate(seq)
		backward += prev
		forward += next
	}
	return puzzle.NewAnswer(forward, backward), nil
}
