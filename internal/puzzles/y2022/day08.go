package y2022

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 8, Title: "Treetop Tree House", Solve: solveDay08})
}

func solveDay08(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	visible, bestScore := 0, 0
	g.Points(func(p aoc.Point, height byte) {
		seen := false
		score := 1
		for _, d := range aoc.Dirs4 {
			dist := 0
			blocked := false
			for q := p.Add(d); g.In(q); q = q.Add(d) {
				dist++
				if g.At(q) >= height {
					blocked = true
					break
				}
			}
			seen = seen || !blocked
			score *= dist
		}
		if seen {
			visible++
		}
		bestScore = max(bestScore, score)
	})
	return puzzle.NewAnswer(visible, bestScore), nil
}
