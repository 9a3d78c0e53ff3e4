package y2023

import (
	"context"
	"slices"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 21, Title: "Step Counter", Solve: solveDay21})
}

const (
	elfSteps      = 64
	infiniteSteps = 26501365
)

// plotCounts reports, for each step count, how many plots can be the last
// one reached. With tiled set the garden repeats in every direction.
func plotCounts(g *aoc.Grid, start aoc.Point, tiled bool, steps ...int) []int {
	limit := slices.Max(steps)
	dist := aoc.BFS(start, func(p aoc.Point) []aoc.Point {
		var next []aoc.Point
		for _, q := range p.Neighbors4() {
			if q.MDist(start) > limit {
				continue
			}
			if !tiled && !g.In(q) {
				continue
			}
			if g.At(aoc.P(aoc.Mod(q.X, g.W), aoc.Mod(q.Y, g.H))) != '#' {
				next = append(next, q)
			}
		}
		return next
	})

	counts := make([]int, len(steps))
	for _, d := range dist {
		for i, s := range steps {
			if d <= s && d%2 == s%2 {
				counts[i]++
			}
		}
	}
	return counts
}

// tiledPlots extrapolates the tiled count quadratically from three samples
// one garden width apart. The real input has a clear row and column through
// S, which makes the growth exactly quadratic.
func tiledPlots(g *aoc.Grid, start aoc.Point, steps int) int {
	n, rem := steps/g.W, steps%g.W
	if n < 3 {
		return plotCounts(g, start, true, steps)[0]
	}
	c := plotCounts(g, start, true, rem, rem+g.W, rem+2*g.W)
	first, second := c[1]-c[0], c[2]-2*c[1]+c[0]
	return c[0] + n*first + n*(n-1)/2*second
}

func solveDay21(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	start, err := g.MustFind('S')
	if err != nil {
		return puzzle.Answer{}, err
	}
	if g.W != g.H {
		return puzzle.Answer{}, errors.NewInputError(errors.ErrCodeRaggedGrid, "garden must be square").
			WithContext("width", g.W).WithContext("height", g.H)
	}
	return puzzle.NewAnswer(plotCounts(g, start, false, elfSteps)[0], tiledPlots(g, start, infiniteSteps)), nil
}
