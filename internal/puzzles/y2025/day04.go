package y2025

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 4, Title: "Printing Department", Solve: solveDay04})
}

const paperRoll = '@'

// accessibleRolls returns the rolls with fewer than four rolls among their
// eight neighbours.
func accessibleRolls(g *aoc.Grid) []aoc.Point {
	var result []aoc.Point
	g.Points(func(p aoc.Point, c byte) {
		if c != paperRoll {
			return
		}
		count := 0
		for _, n := range p.Neighbors8() {
			if g.GetOr(n, '.') == paperRoll {
				count++
			}
		}
		if count < 4 {
			result = append(result, p)
		}
	})
	return result
}

// removeRolls keeps removing accessible rolls until none remain and returns
// how many were removed. g is modified.
func removeRolls(g *aoc.Grid) int {
	removed := 0
	for {
		rolls := accessibleRolls(g)
		if len(rolls) == 0 {
			return removed
		}
		for _, p := range rolls {
			g.Set(p, '.')
		}
		removed += len(rolls)
	}
}

func solveDay04(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(len(accessibleRolls(g)), removeRolls(g.Clone())), nil
}
