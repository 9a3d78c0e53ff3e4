package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 16, Title: "Reindeer Maze", Solve: solveDay16})
}

const (
	stepCost = 1
	turnCost = 1000
)

type reindeer struct {
	pos, dir aoc.Point
}

// reindeerMoves steps forward (or backward when reverse is set, for searching
// from the end) or turns on the spot.
func reindeerMoves(g *aoc.Grid, reverse bool) func(reindeer) []aoc.Edge[reindeer] {
	return func(r reindeer) []aoc.Edge[reindeer] {
		edges := []aoc.Edge[reindeer]{
			{To: reindeer{r.pos, r.dir.TurnLeft()}, Cost: turnCost},
			{To: reindeer{r.pos, r.dir.TurnRight()}, Cost: turnCost},
		}
		step := r.dir
		if reverse {
			step = step.Neg()
		}
		if next := r.pos.Add(step); g.GetOr(next, '#') != '#' {
			edges = append(edges, aoc.Edge[reindeer]{To: reindeer{next, r.dir}, Cost: stepCost})
		}
		return edges
	}
}

// bestSeats returns the lowest score and the number of tiles on any path
// achieving it.
func bestSeats(g *aoc.Grid) (int, int, error) {
	start, err := g.MustFind('S')
	if err != nil {
		return 0, 0, err
	}
	end, err := g.MustFind('E')
	if err != nil {
		return 0, 0, err
	}

	fromStart := aoc.Dijkstra([]reindeer{{start, aoc.East}}, reindeerMoves(g, false), nil)
	var ends []reindeer
	best := -1
	for _, d := range aoc.Dirs4 {
		r := reindeer{end, d}
		ends = append(ends, r)
		if cost, ok := fromStart[r]; ok && (best < 0 || cost < best) {
			best = cost
		}
	}
	if best < 0 {
		return 0, 0, errors.ErrNoSolution("the end tile is unreachable")
	}

	toEnd := aoc.Dijkstra(ends, reindeerMoves(g, true), nil)
	seats := map[aoc.Point]bool{}
	for r, cost := range fromStart {
		if rest, ok := toEnd[r]; ok && cost+rest == best {
			seats[r.pos] = true
		}
	}
	return best, len(seats), nil
}

func solveDay16(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	best, seats, err := bestSeats(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(best, seats), nil
}
