package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 7, Title: "Bridge Repair", Solve: solveDay07})
}

// calibrates works backwards from target, undoing the last operator at each
// step.
func calibrates(target int, nums []int, concat bool) bool {
	last := nums[len(nums)-1]
	if len(nums) == 1 {
		return target == last
	}
	rest := nums[:len(nums)-1]
	if last != 0 && target%last == 0 && calibrates(target/last, rest, concat) {
		return true
	}
	if target >= last && calibrates(target-last, rest, concat) {
		return true
	}
	if concat {
		shift := aoc.Pow(10, aoc.Digits(last))
		if target > last && target%shift == last && calibrates(target/shift, rest, concat) {
			return true
		}
	}
	return false
}

func solveDay07(_ context.Context, input string) (puzzle.Answer, error) {
	plain, withConcat := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		head, tail, err := aoc.Cut(line, ":", i+1)
		if err != nil {
			return puzzle.Answer{}, err
		}
		target, err := aoc.Atoi(head)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		nums, err := aoc.Fields(tail)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		if len(nums) == 0 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "no operands")
		}
		if calibrates(target, nums, false) {
			plain += target
		}
		if calibrates(target, nums, true) {
			withConcat += target
		}
	}
	return puzzle.NewAnswer(plain, withConcat), nil
}
