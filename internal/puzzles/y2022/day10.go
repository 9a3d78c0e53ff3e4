package y2022

import (
	"context"
	"strconv"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 10, Title: "Cathode-Ray Tube", Solve: solveDay10})
}

const (
	crtWidth  = 40
	crtHeight = 6
)

// registerTrace returns X during each cycle; trace[0] is cycle 1.
func registerTrace(input string) ([]int, error) {
	x := 1
	var trace []int
	for i, line := range aoc.NonEmptyLines(input) {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && fields[0] == "noop":
			trace = append(trace, x)
		case len(fields) == 2 && fields[0] == "addx":
			n, err := aoc.Atoi(fields[1])
			if err != nil {
				return nil, errors.AtLine(err, i+1)
			}
			trace = append(trace, x, x)
			x += n
		default:
			return nil, errors.ErrBadLine(i+1, line, nil)
		}
	}
	return trace, nil
}

func signalStrength(trace []int) int {
	total := 0
	for cycle := 20; cycle <= 220 && cycle <= len(trace); cycle += 40 {
		total += cycle * trace[cycle-1]
	}
	return total
}

// renderCRT draws '#' where the 3-pixel sprite covers the beam.
func renderCRT(trace []int) string {
	rows := make([]string, 0, crtHeight)
	for y := range crtHeight {
		var row strings.Builder
		for x := range crtWidth {
			cycle := y*crtWidth + x
			if cycle < len(trace) && aoc.Abs(trace[cycle]-x) <= 1 {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func solveDay10(_ context.Context, input string) (puzzle.Answer, error) {
	trace, err := registerTrace(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: strconv.Itoa(signalStrength(trace)), Part2: renderCRT(trace)}, nil
}
