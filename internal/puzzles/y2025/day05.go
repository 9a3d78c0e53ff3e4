package y2025

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 5, Title: "Cafeteria", Solve: solveDay05})
}

func parseFreshRanges(lines []string) ([]aoc.Interval, error) {
	ranges := make([]aoc.Interval, 0, len(lines))
	for i, line := range lines {
		bounds, err := aoc.SplitInts(line, "-")
		if err != nil {
			return nil, errors.AtLine(err, i+1)
		}
		if len(bounds) != 2 || bounds[0] > bounds[1] {
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected lo-hi")
		}
		ranges = append(ranges, aoc.Span(bounds[0], bounds[1]))
	}
	return ranges, nil
}

func solveDay05(_ context.Context, input string) (puzzle.Answer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return puzzle.Answer{}, errors.ErrMissingMarker("blank line between ranges and IDs")
	}
	ranges, err := parseFreshRanges(blocks[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	merged := aoc.Merge(ranges)

	fresh := 0
	for i, line := range blocks[1] {
		id, err := aoc.Atoi(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, len(blocks[0])+i+2)
		}
		for _, r := range merged {
			if r.Contains(id) {
				fresh++
				break
			}
		}
	}
	return puzzle.NewAnswer(fresh, aoc.TotalLen(merged)), nil
}
