package y2025

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 7, Title: "Laboratories", Solve: solveDay07})
}

// tachyonBeams sends a beam down from S and returns how many splitters it
// hits and how many timelines reach the bottom row.
func tachyonBeams(g *aoc.Grid) (splits, timelines int, err error) {
	start, err := g.MustFind('S')
	if err != nil {
		return 0, 0, err
	}
	beams := make([]int, g.W)
	beams[start.X] = 1
	for y := start.Y + 1; y < g.H; y++ {
		next := make([]int, g.W)
		for x, n := range beams {
			if n == 0 {
				continue
			}
			if g.At(aoc.P(x, y)) != '^' {
				next[x] += n
				continue
			}
			splits++
			if x > 0 {
				next[x-1] += n
			}
			if x < g.W-1 {
				next[x+1] += n
			}
		}
		beams = next
	}
	return splits, aoc.Sum(beams), nil
}

func solveDay07(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	splits, timelines, err := tachyonBeams(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(splits, timelines), nil
}
