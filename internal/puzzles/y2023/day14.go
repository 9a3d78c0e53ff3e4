package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 14, Title: "Parabolic Reflector Dish", Solve: solveDay14})
}

const spinCycles = 1_000_000_000

// tilt rolls every 'O' as far as it goes in dir.
func tilt(g *aoc.Grid, dir aoc.Point) {
	// Scan starting from the edge the rocks roll towards.
	xs, ys := scanOrder(g.W, dir.X), scanOrder(g.H, dir.Y)
	for _, y := range ys {
		for _, x := range xs {
			p := aoc.P(x, y)
			if g.At(p) != 'O' {
				continue
			}
			q := p
			for next := q.Add(dir); g.In(next) && g.At(next) == '.'; next = q.Add(dir) {
				q = next
			}
			if q != p {
				g.Set(p, '.')
				g.Set(q, 'O')
			}
		}
	}
}

func scanOrder(n, d int) []int {
	order := make([]int, n)
	for i := range order {
		if d > 0 {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}

func spin(g *aoc.Grid) *aoc.Grid {
	next := g.Clone()
	for _, d := range []aoc.Point{aoc.North, aoc.West, aoc.South, aoc.East} {
		tilt(next, d)
	}
	return next
}

func northLoad(g *aoc.Grid) int {
	load := 0
	for _, p := range g.FindAll('O') {
		load += g.H - p.Y
	}
	return load
}

func solveDay14(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	tilted := g.Clone()
	tilt(tilted, aoc.North)

	begin, length, history := aoc.CycleFind(g, spin, (*aoc.Grid).String, 1000)
	if begin < 0 {
		return puzzle.Answer{}, errors.ErrNoSolution("spin cycle never repeats")
	}
	final := history[begin+(spinCycles-begin)%length]
	return puzzle.NewAnswer(northLoad(tilted), northLoad(final)), nil
}
