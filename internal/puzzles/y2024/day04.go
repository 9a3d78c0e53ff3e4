package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 4, Title: "Ceres Search", Solve: solveDay04})
}

func countXMAS(g *aoc.Grid) int {
	const word = "XMAS"
	count := 0
	for _, start := range g.FindAll('X') {
		for _, d := range aoc.Dirs8 {
			p, ok := start, true
			for i := 1; i < len(word) && ok; i++ {
				p = p.Add(d)
				ok = g.GetOr(p, 0) == word[i]
			}
			if ok {
				count++
			}
		}
	}
	return count
}

// countCrossMAS counts 'A's with MAS reading either way along both diagonals.
func countCrossMAS(g *aoc.Grid) int {
	isMS := func(a, b byte) bool { return a == 'M' && b == 'S' || a == 'S' && b == 'M' }
	count := 0
	for _, p := range g.FindAll('A') {
		nw, se := g.GetOr(p.Add(aoc.P(-1, -1)), 0), g.GetOr(p.Add(aoc.P(1, 1)), 0)
		ne, sw := g.GetOr(p.Add(aoc.P(1, -1)), 0), g.GetOr(p.Add(aoc.P(-1, 1)), 0)
		if isMS(nw, se) && isMS(ne, sw) {
			count++
		}
	}
	return count
}

func solveDay04(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(countXMAS(g), countCrossMAS(g)), nil
}
