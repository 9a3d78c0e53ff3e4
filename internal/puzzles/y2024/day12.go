package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 12, Title: "Garden Groups", Solve: solveDay12})
}

type gardenRegion map[aoc.Point]bool

func (r gardenRegion) perimeter() int {
	n := 0
	for p := range r {
		for _, q := range p.Neighbors4() {
			if !r[q] {
				n++
			}
		}
	}
	return n
}

// sides counts corners, which equals the number of straight fence sides.
func (r gardenRegion) sides() int {
	corners := 0
	for p := range r {
		for i, a := range aoc.Dirs4 {
			b := aoc.Dirs4[(i+1)%4]
			inA, inB := r[p.Add(a)], r[p.Add(b)]
			switch {
			case !inA && !inB:
				corners++
			case inA && inB && !r[p.Add(a).Add(b)]:
				corners++
			}
		}
	}
	return corners
}

func gardenRegions(g *aoc.Grid) []gardenRegion {
	var regions []gardenRegion
	seen := map[aoc.Point]bool{}
	g.Points(func(p aoc.Point, c byte) {
		if seen[p] {
			return
		}
		region := gardenRegion(aoc.FloodFill(g, p, func(from, to aoc.Point) bool { return g.At(to) == c }))
		for q := range region {
			seen[q] = true
		}
		regions = append(regions, region)
	})
	return regions
}

func fencePrices(g *aoc.Grid) (perimeter, bulk int) {
	for _, r := range gardenRegions(g) {
		perimeter += len(r) * r.perimeter()
		bulk += len(r) * r.sides()
	}
	return perimeter, bulk
}

func solveDay12(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	perimeter, bulk := fencePrices(g)
	return puzzle.NewAnswer(perimeter, bulk), nil
}
