package y2023

import (
	"context"
	"math"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 6, Title: "Wait For It", Solve: solveDay06})
}

// waysToWin counts hold times h in [0, time] with h*(time-h) > record.
func waysToWin(time, record int) int {
	disc := float64(time*time - 4*record)
	if disc < 0 {
		return 0
	}
	root := math.Sqrt(disc)
	lo := int(math.Floor((float64(time)-root)/2)) + 1
	hi := int(math.Ceil((float64(time)+root)/2)) - 1
	// Nudge the bounds to absorb floating point error near exact roots.
	for lo > 0 && (lo-1)*(time-lo+1) > record {
		lo--
	}
	for lo <= hi && lo*(time-lo) <= record {
		lo++
	}
	for hi < time && (hi+1)*(time-hi-1) > record {
		hi++
	}
	for hi >= lo && hi*(time-hi) <= record {
		hi--
	}
	return max(0, hi-lo+1)
}

func solveDay06(_ context.Context, input string) (puzzle.Answer, error) {
	lines := aoc.NonEmptyLines(input)
	if len(lines) != 2 {
		return puzzle.Answer{}, errors.NewInputError(errors.ErrCodeBadLine, "expected Time and Distance lines").
			WithContext("lines", len(lines))
	}
	_, timeText, err := aoc.Cut(lines[0], ":", 1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, distText, err := aoc.Cut(lines[1], ":", 2)
	if err != nil {
		return puzzle.Answer{}, err
	}
	times, err := aoc.Fields(timeText)
	if err != nil {
		return puzzle.Answer{}, errors.AtLine(err, 1)
	}
	dists, err := aoc.Fields(distText)
	if err != nil {
		return puzzle.Answer{}, errors.AtLine(err, 2)
	}
	if len(times) != len(dists) {
		return puzzle.Answer{}, errors.NewInputError(errors.ErrCodeBadLine, "race count mismatch")
	}

	product := 1
	for i := range times {
		product *= waysToWin(times[i], dists[i])
	}

	time, err := aoc.Atoi(strings.ReplaceAll(timeText, " ", ""))
	if err != nil {
		return puzzle.Answer{}, errors.AtLine(err, 1)
	}
	dist, err := aoc.Atoi(strings.ReplaceAll(distText, " ", ""))
	if err != nil {
		return puzzle.Answer{}, errors.AtLine(err, 2)
	}
	return puzzle.NewAnswer(product, waysToWin(time, dist)), nil
}
