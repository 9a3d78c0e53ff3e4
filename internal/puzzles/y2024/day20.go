package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 20, Title: "Race Condition", Solve: solveDay20})
}

const minCheatSaving = 100

// raceTrack maps every track tile to its distance from the start.
func raceTrack(g *aoc.Grid) (map[aoc.Point]int, error) {
	start, err := g.MustFind('S')
	if err != nil {
		return nil, err
	}
	if _, err := g.MustFind('E'); err != nil {
		return nil, err
	}
	return aoc.BFS(start, func(p aoc.Point) []aoc.Point {
		var next []aoc.Point
		for _, q := range p.Neighbors4() {
			if g.GetOr(q, '#') != '#' {
				next = append(next, q)
			}
		}
		return next
	}), nil
}

// countCheats counts the (start, end) pairs where passing through walls for
// up to length picoseconds saves at least saving picoseconds.
func countCheats(track map[aoc.Point]int, length, saving int) int {
	count := 0
	for p, from := range track {
		for dy := -length; dy <= length; dy++ {
			span := length - aoc.Abs(dy)
			for dx := -span; dx <= span; dx++ {
				to, ok := track[p.Add(aoc.P(dx, dy))]
				if !ok {
					continue
				}
				if to-from-aoc.Abs(dx)-aoc.Abs(dy) >= saving {
					count++
				}
			}
		}
	}
	return count
}

func solveDay20(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	track, err := raceTrack(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if end, _ := g.Find('E'); track[end] == 0 {
		return puzzle.Answer{}, errors.ErrNoSolution("the track never reaches the end")
	}
	return puzzle.NewAnswer(countCheats(track, 2, minCheatSaving), countCheats(track, 20, minCheatSaving)), nil
}
