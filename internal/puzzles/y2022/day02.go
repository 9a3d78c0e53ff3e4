package y2022

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 2, Title: "Rock Paper Scissors", Solve: solveDay02})
}

// Shapes are 0 rock, 1 paper, 2 scissors; shape s beats (s+2)%3.
func rpsScore(opponent, mine int) int {
	outcome := (mine - opponent + 4) % 3 // 0 loss, 1 draw, 2 win
	return mine + 1 + outcome*3
}

func solveDay02(_ context.Context, input string) (puzzle.Answer, error) {
	part1, part2 := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		if len(line) != 3 || line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil)
		}
		opponent, code := int(line[0]-'A'), int(line[2]-'X')

		part1 += rpsScore(opponent, code)
		// code 0 lose, 1 draw, 2 win
		part2 += rpsScore(opponent, (opponent+code+2)%3)
	}
	return puzzle.NewAnswer(part1, part2), nil
}
