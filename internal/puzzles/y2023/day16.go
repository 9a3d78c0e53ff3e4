package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 16, Title: "The Floor Will Be Lava", Solve: solveDay16})
}

type beam struct {
	pos, dir aoc.Point
}

// deflect returns the directions a beam leaves tile c in.
func deflect(c byte, dir aoc.Point) []aoc.Point {
	switch c {
	case '/':
		return []aoc.Point{{X: -dir.Y, Y: -dir.X}}
	case '\\':
		return []aoc.Point{{X: dir.Y, Y: dir.X}}
	case '|':
		if dir.X != 0 {
			return []aoc.Point{aoc.North, aoc.South}
		}
	case '-':
		if dir.Y != 0 {
			return []aoc.Point{aoc.East, aoc.West}
		}
	}
	return []aoc.Point{dir}
}

func energized(g *aoc.Grid, start beam) int {
	seen := aoc.BFS(start, func(b beam) []beam {
		var next []beam
		for _, d := range deflect(g.At(b.pos), b.dir) {
			if p := b.pos.Add(d); g.In(p) {
				next = append(next, beam{pos: p, dir: d})
			}
		}
		return next
	})
	tiles := make(map[aoc.Point]bool, len(seen))
	for b := range seen {
		tiles[b.pos] = true
	}
	return len(tiles)
}

func bestEnergized(g *aoc.Grid) int {
	best := 0
	for x := range g.W {
		best = max(best, energized(g, beam{aoc.P(x, 0), aoc.South}), energized(g, beam{aoc.P(x, g.H-1), aoc.North}))
	}
	for y := range g.H {
		best = max(best, energized(g, beam{aoc.P(0, y), aoc.East}), energized(g, beam{aoc.P(g.W-1, y), aoc.West}))
	}
	return best
}

func solveDay16(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(energized(g, beam{aoc.P(0, 0), aoc.East}), bestEnergized(g)), nil
}
