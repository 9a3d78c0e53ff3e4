package y2024

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 15, Title: "Warehouse Woes", Solve: solveDay15})
}

func parseWarehouse(input string) ([]string, []aoc.Point, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, errors.ErrMissingMarker("map and move sections")
	}
	var moves []aoc.Point
	for i, line := range blocks[1] {
		for _, c := range []byte(line) {
			d, ok := aoc.DirFromByte(c)
			if !ok || strings.IndexByte("^>v<", c) < 0 {
				return nil, nil, errors.ErrBadLine(len(blocks[0])+2+i, line, nil).WithContext("move", string(c))
			}
			moves = append(moves, d)
		}
	}
	return blocks[0], moves, nil
}

func widenWarehouse(rows []string) []string {
	r := strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")
	wide := make([]string, len(rows))
	for i, row := range rows {
		wide[i] = r.Replace(row)
	}
	return wide
}

// push tries to move the robot at p one step in dir, dragging every box in
// the way. Wide boxes pull their other half along on vertical pushes.
func push(g *aoc.Grid, p, dir aoc.Point) aoc.Point {
	var order []aoc.Point
	queued := map[aoc.Point]bool{p: true}
	frontier := []aoc.Point{p}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		order = append(order, cur)

		next := cur.Add(dir)
		var adds []aoc.Point
		switch g.At(next) {
		case '#':
			return p
		case 'O':
			adds = []aoc.Point{next}
		case '[':
			adds = []aoc.Point{next, next.Add(aoc.East)}
		case ']':
			adds = []aoc.Point{next, next.Add(aoc.West)}
		}
		for _, a := range adds {
			if !queued[a] {
				queued[a] = true
				frontier = append(frontier, a)
			}
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		from := order[i]
		g.Set(from.Add(dir), g.At(from))
		g.Set(from, '.')
	}
	return p.Add(dir)
}

func gpsSum(rows []string, moves []aoc.Point) (int, error) {
	g, err := aoc.GridFromLines(rows)
	if err != nil {
		return 0, err
	}
	robot, err := g.MustFind('@')
	if err != nil {
		return 0, err
	}
	for _, d := range moves {
		robot = push(g, robot, d)
	}
	sum := 0
	g.Points(func(p aoc.Point, c byte) {
		if c == 'O' || c == '[' {
			sum += 100*p.Y + p.X
		}
	})
	return sum, nil
}

func solveDay15(_ context.Context, input string) (puzzle.Answer, error) {
	rows, moves, err := parseWarehouse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	narrow, err := gpsSum(rows, moves)
	if err != nil {
		return puzzle.Answer{}, err
	}
	wide, err := gpsSum(widenWarehouse(rows), moves)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(narrow, wide), nil
}
