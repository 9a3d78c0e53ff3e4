package y2025

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 2, Title: "Gift Shop", Solve: solveDay02})
}

// repeatedIDs returns the IDs in [lo, hi] made of one digit block written
// at least twice. With twiceOnly set the block must appear exactly twice.
func repeatedIDs(lo, hi int, twiceOnly bool) map[int]bool {
	ids := map[int]bool{}
	for digits := aoc.Digits(lo); digits <= aoc.Digits(hi); digits++ {
		for block := 1; block <= digits/2; block++ {
			if digits%block != 0 || (twiceOnly && digits != 2*block) {
				continue
			}
			// block * mult repeats block digits/block times.
			mult := (aoc.Pow(10, digits) - 1) / (aoc.Pow(10, block) - 1)
			first := max(aoc.Pow(10, block-1), (lo+mult-1)/mult)
			last := min(aoc.Pow(10, block)-1, hi/mult)
			for b := first; b <= last; b++ {
				ids[b*mult] = true
			}
		}
	}
	return ids
}

func sumIDs(ids map[int]bool) int {
	total := 0
	for id := range ids {
		total += id
	}
	return total
}

func solveDay02(_ context.Context, input string) (puzzle.Answer, error) {
	input = strings.Join(strings.Fields(input), "")
	if input == "" {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	doubled, repeated := 0, 0
	for _, tok := range strings.Split(strings.Trim(input, ","), ",") {
		bounds, err := aoc.SplitInts(tok, "-")
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(bounds) != 2 || bounds[0] > bounds[1] || bounds[0] < 1 {
			return puzzle.Answer{}, errors.NewParseError(errors.ErrCodeBadLine, "invalid ID range").WithContext("range", tok)
		}
		doubled += sumIDs(repeatedIDs(bounds[0], bounds[1], true))
		repeated += sumIDs(repeatedIDs(bounds[0], bounds[1], false))
	}
	return puzzle.NewAnswer(doubled, repeated), nil
}
