package y2022

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 3, Title: "Rucksack Reorganization", Solve: solveDay03})
}

// itemSet has bit p set for an item of priority p.
func itemSet(s string) uint64 {
	var set uint64
	for i := 0; i < len(s); i++ {
		set |= 1 << priority(s[i])
	}
	return set
}

func priority(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c-'a') + 1
	}
	return int(c-'A') + 27
}

// onlyPriority returns the priority held by a single-bit set.
func onlyPriority(set uint64) int {
	for p := 1; p <= 52; p++ {
		if set == 1<<p {
			return p
		}
	}
	return 0
}

func validRucksack(s string) bool {
	return s != "" && strings.Trim(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") == ""
}

func solveDay03(_ context.Context, input string) (puzzle.Answer, error) {
	lines := aoc.NonEmptyLines(input)

	part1 := 0
	for i, line := range lines {
		if !validRucksack(line) || len(line)%2 != 0 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil)
		}
		half := len(line) / 2
		shared := itemSet(line[:half]) & itemSet(line[half:])
		p := onlyPriority(shared)
		if p == 0 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).
				WithContext("reason", "compartments must share exactly one item")
		}
		part1 += p
	}

	if len(lines)%3 != 0 {
		return puzzle.Answer{}, errors.NewInputError(errors.ErrCodeValidationFailed, "rucksack count is not a multiple of 3")
	}
	part2 := 0
	for i := 0; i < len(lines); i += 3 {
		badge := onlyPriority(itemSet(lines[i]) & itemSet(lines[i+1]) & itemSet(lines[i+2]))
		if badge == 0 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, lines[i], nil).
				WithContext("reason", "group must share exactly one item")
		}
		part2 += badge
	}
	return puzzle.NewAnswer(part1, part2), nil
}
