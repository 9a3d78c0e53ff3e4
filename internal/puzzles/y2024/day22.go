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
	registry.Register(puzzle.Solution{Year: 2024, Day: 22, Title: "Monkey Market", Solve: solveDay22})
}

const (
	secretRounds = 2000
	pruneModulo  = 16777216
	// changeSpan covers price changes -9..9 as base-19 digits.
	changeSpan = 19
)

func nextSecret(s int) int {
	s = (s ^ s*64) % pruneModulo
	s = (s ^ s/32) % pruneModulo
	return (s ^ s*2048) % pruneModulo
}

// sequenceBananas adds, for each run of four price changes, the price at the
// first time each buyer shows it.
func sequenceBananas(secret int, totals []int, seen []int, buyer int) int {
	key := 0
	prev := secret % 10
	for i := 1; i <= secretRounds; i++ {
		secret = nextSecret(secret)
		price := secret % 10
		key = (key*changeSpan + price - prev + 9) % (changeSpan * changeSpan * changeSpan * changeSpan)
		prev = price
		if i >= 4 && seen[key] != buyer {
			seen[key] = buyer
			totals[key] += price
		}
	}
	return secret
}

func solveDay22(_ context.Context, input string) (puzzle.Answer, error) {
	var secrets []int
	for i, line := range aoc.NonEmptyLines(input) {
		n, err := aoc.Atoi(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		secrets = append(secrets, n)
	}
	if len(secrets) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}

	size := changeSpan * changeSpan * changeSpan * changeSpan
	totals := make([]int, size)
	seen := make([]int, size)
	sum := 0
	for b, s := range secrets {
		sum += sequenceBananas(s, totals, seen, b+1)
	}
	return puzzle.NewAnswer(sum, slices.Max(totals)), nil
}
