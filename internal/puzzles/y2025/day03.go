package y2025

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 3, Title: "Lobby", Solve: solveDay03})
}

// maxJoltage picks n batteries from bank, keeping their order, to form the
// largest number. Each digit is the leftmost maximum that still leaves room
// for the remaining picks.
func maxJoltage(bank string, n int) int {
	joltage, from := 0, 0
	for left := n; left > 0; left-- {
		best := from
		for i := from; i <= len(bank)-left; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		joltage = joltage*10 + int(bank[best]-'0')
		from = best + 1
	}
	return joltage
}

func solveDay03(_ context.Context, input string) (puzzle.Answer, error) {
	banks := aoc.NonEmptyLines(input)
	if len(banks) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	pair, dozen := 0, 0
	for i, bank := range banks {
		for j := range len(bank) {
			if bank[j] < '1' || bank[j] > '9' {
				return puzzle.Answer{}, errors.ErrBadLine(i+1, bank, nil).WithContext("column", j+1)
			}
		}
		if len(bank) < 12 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, bank, nil).WithContext("reason", "bank has fewer than 12 batteries")
		}
		pair += maxJoltage(bank, 2)
		dozen += maxJoltage(bank, 12)
	}
	return puzzle.NewAnswer(pair, dozen), nil
}
