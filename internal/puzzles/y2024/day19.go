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
	registry.Register(puzzle.Solution{Year: 2024, Day: 19, Title: "Linen Layout", Solve: solveDay19})
}

// arrangements counts the ways to build design from towels.
func arrangements(design string, towels []string) int {
	ways := make([]int, len(design)+1)
	ways[0] = 1
	for i := range len(design) {
		if ways[i] == 0 {
			continue
		}
		for _, t := range towels {
			if strings.HasPrefix(design[i:], t) {
				ways[i+len(t)] += ways[i]
			}
		}
	}
	return ways[len(design)]
}

func solveDay19(_ context.Context, input string) (puzzle.Answer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return puzzle.Answer{}, errors.ErrMissingMarker("towel list and designs")
	}
	var towels []string
	for _, t := range strings.Split(blocks[0][0], ",") {
		if t = strings.TrimSpace(t); t != "" {
			towels = append(towels, t)
		}
	}

	possible, total := 0, 0
	for _, design := range blocks[1] {
		if n := arrangements(strings.TrimSpace(design), towels); n > 0 {
			possible++
			total += n
		}
	}
	return puzzle.NewAnswer(possible, total), nil
}
