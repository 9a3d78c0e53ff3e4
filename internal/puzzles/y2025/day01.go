package y2025

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 1, Title: "Secret Entrance", Solve: solveDay01})
}

const (
	dialSize  = 100
	dialStart = 50
)

// turnDial rotates the dial from pos by clicks (negative is left) and returns
// the new position and how many clicks left it pointing at zero.
func turnDial(pos, clicks int) (int, int) {
	next := aoc.Mod(pos+clicks, dialSize)
	if clicks >= 0 {
		return next, (pos + clicks) / dialSize
	}
	n := -clicks
	switch {
	case pos == 0:
		return next, n / dialSize
	case n >= pos:
		return next, (n-pos)/dialSize + 1
	}
	return next, 0
}

func solveDay01(_ context.Context, input string) (puzzle.Answer, error) {
	pos, landed, passed := dialStart, 0, 0
	lines := aoc.NonEmptyLines(input)
	if len(lines) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	for i, line := range lines {
		clicks, err := aoc.Atoi(line[1:])
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		switch line[0] {
		case 'L':
			clicks = -clicks
		case 'R':
		default:
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "rotation must start with L or R")
		}
		var zeros int
		pos, zeros = turnDial(pos, clicks)
		passed += zeros
		if pos == 0 {
			landed++
		}
	}
	return puzzle.NewAnswer(landed, passed), nil
}
