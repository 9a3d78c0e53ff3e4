package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 13, Title: "Claw Contraption", Solve: solveDay13})
}

const prizeOffset = 10_000_000_000_000

type clawMachine struct {
	a, b, prize aoc.Point
}

func parseClawMachines(input string) ([]clawMachine, error) {
	var machines []clawMachine
	for i, block := range aoc.Blocks(input) {
		if len(block) != 3 {
			return nil, errors.NewParseError(errors.ErrCodeBadLine, "machine needs three lines").
				WithContext("machine", i+1)
		}
		var pts [3]aoc.Point
		for j, line := range block {
			n := aoc.Ints(line)
			if len(n) != 2 {
				return nil, errors.NewParseError(errors.ErrCodeBadLine, "expected X and Y").
					WithContext("machine", i+1).WithContext("text", line)
			}
			pts[j] = aoc.P(n[0], n[1])
		}
		machines = append(machines, clawMachine{a: pts[0], b: pts[1], prize: pts[2]})
	}
	return machines, nil
}

// tokens solves the 2x2 system by Cramer's rule. ok is false when the prize
// can't be reached with whole, non-negative presses.
func (m clawMachine) tokens(offset int) (int, bool) {
	px, py := m.prize.X+offset, m.prize.Y+offset
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		return 0, false
	}
	an := px*m.b.Y - py*m.b.X
	bn := m.a.X*py - m.a.Y*px
	if an%det != 0 || bn%det != 0 {
		return 0, false
	}
	a, b := an/det, bn/det
	if a < 0 || b < 0 {
		return 0, false
	}
	return 3*a + b, true
}

func totalTokens(machines []clawMachine, offset int) int {
	total := 0
	for _, m := range machines {
		if n, ok := m.tokens(offset); ok {
			total += n
		}
	}
	return total
}

func solveDay13(_ context.Context, input string) (puzzle.Answer, error) {
	machines, err := parseClawMachines(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(totalTokens(machines, 0), totalTokens(machines, prizeOffset)), nil
}
