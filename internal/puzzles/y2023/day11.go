package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 11, Title: "Cosmic Expansion", Solve: solveDay11})
}

// galaxyDistances sums pairwise Manhattan distances after every empty row
// and column grows to factor rows or columns.
func galaxyDistances(g *aoc.Grid, factor int) int {
	galaxies := g.FindAll('#')
	rowUsed := make([]bool, g.H)
	colUsed := make([]bool, g.W)
	for _, p := range galaxies {
		rowUsed[p.Y] = true
		colUsed[p.X] = true
	}
	return expandedSum(galaxies, func(p aoc.Point) int { return p.X }, colUsed, factor) +
		expandedSum(galaxies, func(p aoc.Point) int { return p.Y }, rowUsed, factor)
}

// expandedSum handles one axis: each coordinate is shifted by the empty
// lines before it, then pairwise differences are summed from sorted prefix
// counts.
func expandedSum(galaxies []aoc.Point, axis func(aoc.Point) int, used []bool, factor int) int {
	shifted := make([]int, len(used))
	offset := 0
	for i, u := range used {
		shifted[i] = i + offset
		if !u {
			offset += factor - 1
		}
	}
	counts := make([]int, len(used))
	for _, p := range galaxies {
		counts[axis(p)]++
	}

	total, seen, prefix := 0, 0, 0
	for i, n := range counts {
		for range n {
			total += seen*shifted[i] - prefix
			seen++
			prefix += shifted[i]
		}
	}
	return total
}

func solveDay11(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(galaxyDistances(g, 2), galaxyDistances(g, 1_000_000)), nil
}
