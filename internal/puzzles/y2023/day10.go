package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 10, Title: "Pipe Maze", Solve: solveDay10})
}

var pipeExits = map[byte][2]aoc.Point{
	'|': {aoc.North, aoc.South},
	'-': {aoc.East, aoc.West},
	'L': {aoc.North, aoc.East},
	'J': {aoc.North, aoc.West},
	'7': {aoc.South, aoc.West},
	'F': {aoc.South, aoc.East},
}

func pipeConnects(c byte, dir aoc.Point) bool {
	exits, ok := pipeExits[c]
	return ok && (exits[0] == dir || exits[1] == dir)
}

// pipeLoop returns the tiles of the loop through S in walking order.
func pipeLoop(g *aoc.Grid) ([]aoc.Point, error) {
	start, err := g.MustFind('S')
	if err != nil {
		return nil, err
	}
	dir, found := aoc.Point{}, false
	for _, d := range aoc.Dirs4 {
		if c, ok := g.Get(start.Add(d)); ok && pipeConnects(c, d.Neg()) {
			dir, found = d, true
			break
		}
	}
	if !found {
		return nil, errors.ErrNoSolution("no pipe connects to S")
	}

	loop := []aoc.Point{start}
	cur := start.Add(dir)
	for cur != start {
		loop = append(loop, cur)
		exits, ok := pipeExits[g.GetOr(cur, '.')]
		if !ok || (exits[0] != dir.Neg() && exits[1] != dir.Neg()) {
			return nil, errors.ErrNoSolution("loop broken at " + cur.String())
		}
		if exits[0] == dir.Neg() {
			dir = exits[1]
		} else {
			dir = exits[0]
		}
		cur = cur.Add(dir)
	}
	return loop, nil
}

// enclosedTiles applies Pick's theorem to the loop polygon.
func enclosedTiles(loop []aoc.Point) int {
	twiceArea := aoc.Abs(aoc.Shoelace(loop))
	return (twiceArea-len(loop))/2 + 1
}

func solveDay10(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	loop, err := pipeLoop(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(len(loop)/2, enclosedTiles(loop)), nil
}
