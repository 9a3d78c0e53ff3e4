package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 11, Title: "Plutonian Pebbles", Solve: solveDay11})
}

type stoneKey struct {
	stone, blinks int
}

type stoneCounter map[stoneKey]int

// count returns how many stones one stone becomes after blinks.
func (memo stoneCounter) count(stone, blinks int) int {
	if blinks == 0 {
		return 1
	}
	key := stoneKey{stone, blinks}
	if n, ok := memo[key]; ok {
		return n
	}
	var n int
	switch digits := aoc.Digits(stone); {
	case stone == 0:
		n = memo.count(1, blinks-1)
	case digits%2 == 0:
		half := aoc.Pow(10, digits/2)
		n = memo.count(stone/half, blinks-1) + memo.count(stone%half, blinks-1)
	default:
		n = memo.count(stone*2024, blinks-1)
	}
	memo[key] = n
	return n
}

func stonesAfter(stones []int, blinks int) int {
	memo := stoneCounter{}
	total := 0
	for _, s := range stones {
		total += memo.count(s, blinks)
	}
	return total
}

func solveDay11(_ context.Context, input string) (puzzle.Answer, error) {
	stones, err := aoc.Fields(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(stones) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	return puzzle.NewAnswer(stonesAfter(stones, 25), stonesAfter(stones, 75)), nil
}
