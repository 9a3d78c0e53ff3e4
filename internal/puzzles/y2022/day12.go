package y2022

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 12, Title: "Hill Climbing Algorithm", Solve: solveDay12})
}

func hillHeight(c byte) byte {
	switch c {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	}
	return c
}

func solveDay12(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	start, err := g.MustFind('S')
	if err != nil {
		return puzzle.Answer{}, err
	}
	end, err := g.MustFind('E')
	if err != nil {
		return puzzle.Answer{}, err
	}

	// Walk downhill from E so one search answers both parts: a step from p
	// to q is allowed when climbing q -> p would be.
	dist := aoc.BFS(end, func(p aoc.Point) []aoc.Point {
		var next []aoc.Point
		h := hillHeight(g.At(p))
		for _, q := range p.Neighbors4() {
			if c, ok := g.Get(q); ok && int(h)-int(hillHeight(c)) <= 1 {
				next = append(next, q)
			}
		}
		return next
	})

	fromStart, ok := dist[start]
	if !ok {
		return puzzle.Answer{}, errors.ErrNoSolution("no path from S to E")
	}
	best := fromStart
	for p, d := range dist {
		if hillHeight(g.At(p)) == 'a' {
			best = min(best, d)
		}
	}
	return puzzle.NewAnswer(fromStart, best), nil
}
