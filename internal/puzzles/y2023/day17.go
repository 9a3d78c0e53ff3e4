package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 17, Title: "Clumsy Crucible", Solve: solveDay17})
}

// crucible is a block the crucible has just reached after a straight run
// along the given axis. The next run must turn.
type crucible struct {
	pos        aoc.Point
	horizontal bool
}

// minHeatLoss finds the cheapest path from the top-left to the bottom-right
// block, with every straight run between minRun and maxRun blocks long.
func minHeatLoss(g *aoc.Grid, minRun, maxRun int) (int, error) {
	end := aoc.P(g.W-1, g.H-1)
	starts := []crucible{{aoc.P(0, 0), true}, {aoc.P(0, 0), false}}

	next := func(c crucible) []aoc.Edge[crucible] {
		dirs := [2]aoc.Point{aoc.North, aoc.South}
		if !c.horizontal {
			dirs = [2]aoc.Point{aoc.East, aoc.West}
		}
		var edges []aoc.Edge[crucible]
		for _, d := range dirs {
			cost := 0
			p := c.pos
			for run := 1; run <= maxRun; run++ {
				p = p.Add(d)
				if !g.In(p) {
					break
				}
				cost += int(g.At(p) - '0')
				if run >= minRun {
					edges = append(edges, aoc.Edge[crucible]{To: crucible{p, d.Y == 0}, Cost: cost})
				}
			}
		}
		return edges
	}

	dist := aoc.Dijkstra(starts, next, func(c crucible) bool { return c.pos == end })
	best := -1
	for _, horizontal := range []bool{true, false} {
		if d, ok := dist[crucible{end, horizontal}]; ok && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, errors.ErrNoSolution("factory block is unreachable")
	}
	return best, nil
}

func solveDay17(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	for i, c := range g.Cells {
		if c < '1' || c > '9' {
			return puzzle.Answer{}, errors.ErrBadLine(g.PointAt(i).Y+1, string(g.Row(g.PointAt(i).Y)), nil).
				WithContext("reason", "heat loss must be a digit 1-9")
		}
	}
	normal, err := minHeatLoss(g, 1, 3)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ultra, err := minHeatLoss(g, 4, 10)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(normal, ultra), nil
}
