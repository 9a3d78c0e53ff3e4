package y2025

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 10, Title: "Factory", Solve: solveDay10})
}

// factoryMachine uses bit i for indicator light i, both in the target
// pattern and in each button's wiring.
type factoryMachine struct {
	lights   uint32
	buttons  []uint32
	joltages []int
}

func parseFactoryMachine(line string) (factoryMachine, error) {
	var m factoryMachine
	for _, tok := range strings.Fields(line) {
		if len(tok) < 2 {
			return m, errors.NewParseError(errors.ErrCodeBadLine, "short token").WithContext("token", tok)
		}
		body := tok[1 : len(tok)-1]
		switch tok[0] {
		case '[':
			if len(body) > 32 {
				return m, errors.NewParseError(errors.ErrCodeBadLine, "too many lights").WithContext("token", tok)
			}
			for i := range len(body) {
				if body[i] == '#' {
					m.lights |= 1 << i
				}
			}
		case '(':
			wires, err := aoc.SplitInts(body, ",")
			if err != nil {
				return m, err
			}
			var button uint32
			for _, w := range wires {
				if w < 0 || w >= 32 {
					return m, errors.NewParseError(errors.ErrCodeBadLine, "button wired to unknown light").WithContext("token", tok)
				}
				button |= 1 << w
			}
			m.buttons = append(m.buttons, button)
		case '{':
			jolts, err := aoc.SplitInts(body, ",")
			if err != nil {
				return m, err
			}
			m.joltages = jolts
		default:
			return m, errors.NewParseError(errors.ErrCodeBadLine, "unexpected token").WithContext("token", tok)
		}
	}
	return m, nil
}

// fewestPresses returns the fewest button presses that light the target
// pattern. Pressing a button twice cancels out, so a BFS over light states
// is enough.
func (m factoryMachine) fewestPresses() (int, bool) {
	return aoc.ShortestPath(uint32(0), func(s uint32) []uint32 {
		next := make([]uint32, len(m.buttons))
		for i, b := range m.buttons {
			next[i] = s ^ b
		}
		return next
	}, func(s uint32) bool { return s == m.lights })
}

func solveDay10(_ context.Context, input string) (puzzle.Answer, error) {
	lines := aoc.NonEmptyLines(input)
	if len(lines) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	total := 0
	for i, line := range lines {
		m, err := parseFactoryMachine(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		presses, ok := m.fewestPresses()
		if !ok {
			return puzzle.Answer{}, errors.ErrNoSolution("lights cannot reach the target pattern").WithContext("line", i+1)
		}
		total += presses
	}
	return puzzle.NewAnswer(total, nil), nil
}
