package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 10, Title: "Hoof It", Solve: solveDay10})
}

// uphill returns the neighbours exactly one higher than p.
func uphill(g *aoc.Grid, p aoc.Point) []aoc.Point {
	var next []aoc.Point
	for _, q := range p.Neighbors4() {
		if c, ok := g.Get(q); ok && c == g.At(p)+1 {
			next = append(next, q)
		}
	}
	return next
}

// trailScores returns, summed over all trailheads, the number of reachable
// peaks and the number of distinct hiking trails.
func trailScores(g *aoc.Grid) (score, rating int) {
	paths := map[aoc.Point]int{}
	var count func(p aoc.Point) int
	count = func(p aoc.Point) int {
		if g.At(p) == '9' {
			return 1
		}
		if n, ok := paths[p]; ok {
			return n
		}
		n := 0
		for _, q := range uphill(g, p) {
			n += count(q)
		}
		paths[p] = n
		return n
	}

	for _, head := range g.FindAll('0') {
		for p := range aoc.BFS(head, func(p aoc.Point) []aoc.Point { return uphill(g, p) }) {
			if g.At(p) == '9' {
				score++
			}
		}
		rating += count(head)
	}
	return score, rating
}

func solveDay10(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	score, rating := trailScores(g)
	return puzzle.NewAnswer(score, rating), nil
}
