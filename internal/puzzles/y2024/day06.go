package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 6, Title: "Guard Gallivant", Solve: solveDay06})
}

type guardState struct {
	pos, dir aoc.Point
}

// patrol walks the guard until the guard leaves the lab. looped is set when
// the walk turns into a cycle instead.
func patrol(g *aoc.Grid, start aoc.Point) (visited map[aoc.Point]bool, looped bool) {
	visited = map[aoc.Point]bool{start: true}
	turns := map[guardState]bool{}
	cur := guardState{pos: start, dir: aoc.North}
	for {
		next := cur.pos.Add(cur.dir)
		c, ok := g.Get(next)
		if !ok {
			return visited, false
		}
		if c == '#' {
			if turns[cur] {
				return visited, true
			}
			turns[cur] = true
			cur.dir = cur.dir.TurnRight()
			continue
		}
		cur.pos = next
		visited[next] = true
	}
}

// loopObstructions counts the tiles where one extra obstacle traps the
// guard. Only tiles on the original route can matter.
func loopObstructions(g *aoc.Grid, start aoc.Point, route map[aoc.Point]bool) int {
	count := 0
	for p := range route {
		if p == start {
			continue
		}
		g.Set(p, '#')
		if _, looped := patrol(g, start); looped {
			count++
		}
		g.Set(p, '.')
	}
	return count
}

func solveDay06(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	start, err := g.MustFind('^')
	if err != nil {
		return puzzle.Answer{}, err
	}
	route, _ := patrol(g, start)
	return puzzle.NewAnswer(len(route), loopObstructions(g, start, route)), nil
}
