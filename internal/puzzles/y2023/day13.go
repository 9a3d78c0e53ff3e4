package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 13, Title: "Point of Incidence", Solve: solveDay13})
}

// mirrorRow returns the number of rows above a horizontal mirror whose two
// sides differ in exactly smudges cells, or 0 when there is none.
func mirrorRow(g *aoc.Grid, smudges int) int {
	for split := 1; split < g.H; split++ {
		diff := 0
		for up, down := split-1, split; up >= 0 && down < g.H && diff <= smudges; up, down = up-1, down+1 {
			a, b := g.Row(up), g.Row(down)
			for x := range a {
				if a[x] != b[x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return split
		}
	}
	return 0
}

func mirrorScore(g *aoc.Grid, smudges int) (int, bool) {
	if r := mirrorRow(g, smudges); r > 0 {
		return 100 * r, true
	}
	if c := mirrorRow(g.Transpose(), smudges); c > 0 {
		return c, true
	}
	return 0, false
}

func solveDay13(_ context.Context, input string) (puzzle.Answer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	clean, smudged := 0, 0
	for i, block := range blocks {
		g, err := aoc.GridFromLines(block)
		if err != nil {
			return puzzle.Answer{}, err
		}
		a, ok := mirrorScore(g, 0)
		if !ok {
			return puzzle.Answer{}, errors.ErrNoSolution("pattern has no mirror").WithContext("pattern", i+1)
		}
		b, ok := mirrorScore(g, 1)
		if !ok {
			return puzzle.Answer{}, errors.ErrNoSolution("pattern has no smudged mirror").WithContext("pattern", i+1)
		}
		clean += a
		smudged += b
	}
	return puzzle.NewAnswer(clean, smudged), nil
}
