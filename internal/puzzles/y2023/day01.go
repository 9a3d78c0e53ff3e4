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
	registry.Register(puzzle.Solution{Year: 2023, Day: 1, Title: "Trebuchet?!", Solve: solveDay01})
}

var spelledDigits = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled-out digits may
// overlap, as in "eightwo".
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for d, word := range spelledDigits {
			if strings.HasPrefix(s[i:], word) {
				return d + 1, true
			}
		}
	}
	return 0, false
}

// calibration combines the first and last digit of line; ok is false when
// the line holds no digit.
func calibration(line string, spelled bool) (int, bool) {
	first, last := -1, -1
	for i := range len(line) {
		if d, ok := digitAt(line, i, spelled); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}

func calibrationSum(input string, spelled bool) (int, error) {
	total := 0
	for i, line := range aoc.NonEmptyLines(input) {
		v, ok := calibration(line, spelled)
		if !ok {
			return 0, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "no digit")
		}
		total += v
	}
	return total, nil
}

func solveDay01(_ context.Context, input string) (puzzle.Answer, error) {
	part1, err := calibrationSum(input, false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := calibrationSum(input, true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(part1, part2), nil
}
