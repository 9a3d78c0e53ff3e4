package y2024

import (
	"context"
	"sort"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 18, Title: "RAM Run", Solve: solveDay18})
}

const (
	memorySize  = 71
	fallenBytes = 1024
)

func parseFallingBytes(input string, size int) ([]aoc.Point, error) {
	var bytes []aoc.Point
	for i, line := range aoc.NonEmptyLines(input) {
		n, err := aoc.SplitInts(line, ",")
		if err != nil {
			return nil, errors.AtLine(err, i+1)
		}
		if len(n) != 2 || !aoc.P(n[0], n[1]).In(size, size) {
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "byte outside memory space")
		}
		bytes = append(bytes, aoc.P(n[0], n[1]))
	}
	return bytes, nil
}

// exitSteps returns the shortest walk from the top-left to the bottom-right
// corner once the first n bytes have fallen.
func exitSteps(bytes []aoc.Point, size, n int) (int, bool) {
	g := aoc.NewGrid(size, size, '.')
	for _, b := range bytes[:n] {
		g.Set(b, '#')
	}
	exit := aoc.P(size-1, size-1)
	return aoc.ShortestPath(aoc.P(0, 0), func(p aoc.Point) []aoc.Point {
		var next []aoc.Point
		for _, q := range p.Neighbors4() {
			if g.GetOr(q, '#') == '.' {
				next = append(next, q)
			}
		}
		return next
	}, func(p aoc.Point) bool { return p == exit })
}

// firstBlocker binary searches for the first byte that cuts off the exit.
func firstBlocker(bytes []aoc.Point, size int) (aoc.Point, bool) {
	n := sort.Search(len(bytes)+1, func(n int) bool {
		_, ok := exitSteps(bytes, size, n)
		return !ok
	})
	if n == 0 || n > len(bytes) {
		return aoc.Point{}, false
	}
	return bytes[n-1], true
}

func solveDay18(_ context.Context, input string) (puzzle.Answer, error) {
	bytes, err := parseFallingBytes(input, memorySize)
	if err != nil {
		return puzzle.Answer{}, err
	}
	steps, ok := exitSteps(bytes, memorySize, min(fallenBytes, len(bytes)))
	if !ok {
		return puzzle.Answer{}, errors.ErrNoSolution("exit is cut off after the first kilobyte")
	}
	blocker, ok := firstBlocker(bytes, memorySize)
	if !ok {
		return puzzle.NewAnswer(steps, nil), nil
	}
	return puzzle.NewAnswer(steps, blocker), nil
}
