package y2023

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 4, Title: "Scratchcards", Solve: solveDay04})
}

// cardMatches counts how many of the card's numbers are winning numbers.
func cardMatches(line string) (int, error) {
	_, body, ok := strings.Cut(line, ":")
	if !ok {
		return 0, errors.NewParseError(errors.ErrCodeBadLine, "missing card header")
	}
	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return 0, errors.NewParseError(errors.ErrCodeBadLine, "missing '|'")
	}
	winning, err := aoc.Fields(winText)
	if err != nil {
		return 0, err
	}
	have, err := aoc.Fields(haveText)
	if err != nil {
		return 0, err
	}

	set := make(map[int]bool, len(winning))
	for _, n := range winning {
		set[n] = true
	}
	matches := 0
	for _, n := range have {
		if set[n] {
			matches++
		}
	}
	return matches, nil
}

func solveDay04(_ context.Context, input string) (puzzle.Answer, error) {
	lines := aoc.NonEmptyLines(input)
	points := 0
	copies := make([]int, len(lines))
	for i := range copies {
		copies[i] = 1
	}

	for i, line := range lines {
		matches, err := cardMatches(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		if matches > 0 {
			points += 1 << (matches - 1)
		}
		for j := i + 1; j <= i+matches && j < len(lines); j++ {
			copies[j] += copies[i]
		}
	}
	return puzzle.NewAnswer(points, aoc.Sum(copies)), nil
}
