package y2022

import (
	"context"
	"slices"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 11, Title: "Monkey in the Middle", Solve: solveDay11})
}

type monkey struct {
	items   []int
	op      byte // '+' or '*'
	operand int  // 0 means "old"
	divisor int
	ifTrue  int
	ifFalse int
}

func (m *monkey) inspect(worry int) int {
	operand := m.operand
	if operand == 0 {
		operand = worry
	}
	if m.op == '*' {
		return worry * operand
	}
	return worry + operand
}

func (m *monkey) target(worry int) int {
	if worry%m.divisor == 0 {
		return m.ifTrue
	}
	return m.ifFalse
}

func parseMonkeys(input string) ([]monkey, error) {
	var monkeys []monkey
	for _, block := range aoc.Blocks(input) {
		if len(block) != 6 {
			return nil, errors.NewParseError(errors.ErrCodeBadLine, "monkey block must have 6 lines").
				WithContext("monkey", len(monkeys))
		}
		m := monkey{items: aoc.Ints(block[1])}

		_, expr, ok := strings.Cut(block[2], "new = old ")
		if !ok || len(expr) < 3 || (expr[0] != '+' && expr[0] != '*') {
			return nil, errors.NewParseError(errors.ErrCodeBadLine, "bad operation").
				WithContext("line", block[2])
		}
		m.op = expr[0]
		if arg := strings.TrimSpace(expr[1:]); arg != "old" {
			n, err := aoc.Atoi(arg)
			if err != nil {
				return nil, err
			}
			m.operand = n
		}

		numbers := [3]int{}
		for i, line := range block[3:] {
			ints := aoc.Ints(line)
			if len(ints) != 1 {
				return nil, errors.NewParseError(errors.ErrCodeBadLine, "expected one number").
					WithContext("line", line)
			}
			numbers[i] = ints[0]
		}
		m.divisor, m.ifTrue, m.ifFalse = numbers[0], numbers[1], numbers[2]
		if m.divisor == 0 {
			return nil, errors.NewParseError(errors.ErrCodeBadNumber, "divisor must not be zero")
		}
		monkeys = append(monkeys, m)
	}

	for _, m := range monkeys {
		if m.ifTrue >= len(monkeys) || m.ifFalse >= len(monkeys) || m.ifTrue < 0 || m.ifFalse < 0 {
			return nil, errors.NewInputError(errors.ErrCodeValidationFailed, "throw target does not exist")
		}
	}
	return monkeys, nil
}

// monkeyBusiness plays rounds and multiplies the two highest inspection
// counts. relief divides worry by 3 after each inspection; without it worry
// is kept modulo the product of all divisors.
func monkeyBusiness(template []monkey, rounds int, relief bool) int {
	monkeys := make([]monkey, len(template))
	modulus := 1
	for i, m := range template {
		m.items = slices.Clone(m.items)
		monkeys[i] = m
		modulus = aoc.LCM(modulus, m.divisor)
	}

	inspected := make([]int, len(monkeys))
	for range rounds {
		for i := range monkeys {
			m := &monkeys[i]
			for _, worry := range m.items {
				worry = m.inspect(worry)
				if relief {
					worry /= 3
				} else {
					worry %= modulus
				}
				to := m.target(worry)
				monkeys[to].items = append(monkeys[to].items, worry)
			}
			inspected[i] += len(m.items)
			m.items = m.items[:0]
		}
	}

	slices.Sort(inspected)
	n := len(inspected)
	if n < 2 {
		return 0
	}
	return inspected[n-1] * inspected[n-2]
}

func solveDay11(_ context.Context, input string) (puzzle.Answer, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(monkeyBusiness(monkeys, 20, true), monkeyBusiness(monkeys, 10000, false)), nil
}
