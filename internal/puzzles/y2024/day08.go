package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 8, Title: "Resonant Collinearity", Solve: solveDay08})
}

func antennaGroups(g *aoc.Grid) map[byte][]aoc.Point {
	groups := map[byte][]aoc.Point{}
	g.Points(func(p aoc.Point, c byte) {
		if c != '.' {
			groups[c] = append(groups[c], p)
		}
	})
	return groups
}

// antinodes marks the points in line with each antenna pair. Without
// harmonics only the two points at twice the distance count; with them every
// grid point on the line does.
func antinodes(g *aoc.Grid, harmonics bool) int {
	nodes := map[aoc.Point]bool{}
	for _, antennas := range antennaGroups(g) {
		for i, a := range antennas {
			for j, b := range antennas {
				if i == j {
					continue
				}
				d := b.Sub(a)
				if !harmonics {
					if p := b.Add(d); g.In(p) {
						nodes[p] = true
					}
					continue
				}
				step := d
				if k := aoc.GCD(d.X, d.Y); k > 1 {
					step = aoc.P(d.X/k, d.Y/k)
				}
				for p := a; g.In(p); p = p.Add(step) {
					nodes[p] = true
				}
			}
		}
	}
	return len(nodes)
}

func solveDay08(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(antinodes(g, false), antinodes(g, true)), nil
}
