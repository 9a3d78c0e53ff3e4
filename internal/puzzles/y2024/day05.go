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
	registry.Register(puzzle.Solution{Year: 2024, Day: 5, Title: "Print Queue", Solve: solveDay05})
}

// pageRules holds every "before|after" pair.
type pageRules map[[2]int]bool

func (r pageRules) compare(a, b int) int {
	switch {
	case r[[2]int{a, b}]:
		return -1
	case r[[2]int{b, a}]:
		return 1
	}
	return 0
}

func solveDay05(_ context.Context, input string) (puzzle.Answer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return puzzle.Answer{}, errors.ErrMissingMarker("rule and update sections")
	}

	rules := pageRules{}
	for i, line := range blocks[0] {
		before, after, err := aoc.Cut(line, "|", i+1)
		if err != nil {
			return puzzle.Answer{}, err
		}
		a, err := aoc.Atoi(before)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		b, err := aoc.Atoi(after)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		rules[[2]int{a, b}] = true
	}

	ordered, fixed := 0, 0
	for i, line := range blocks[1] {
		pages, err := aoc.SplitInts(line, ",")
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, len(blocks[0])+2+i)
		}
		if slices.IsSortedFunc(pages, rules.compare) {
			ordered += pages[len(pages)/2]
			continue
		}
		slices.SortFunc(pages, rules.compare)
		fixed += pages[len(pages)/2]
	}
	return puzzle.NewAnswer(ordered, fixed), nil
}
