package y2023

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 8, Title: "Haunted Wasteland", Solve: solveDay08})
}

type desertMap struct {
	turns string
	nodes map[string][2]string
}

func parseDesertMap(input string) (*desertMap, error) {
	lines := aoc.NonEmptyLines(input)
	if len(lines) < 2 {
		return nil, errors.ErrEmptyInput()
	}
	m := &desertMap{turns: lines[0], nodes: make(map[string][2]string, len(lines)-1)}
	if strings.Trim(m.turns, "LR") != "" {
		return nil, errors.ErrBadLine(1, m.turns, nil).WithContext("reason", "turns must be L or R")
	}
	for i, line := range lines[1:] {
		name, rest, err := aoc.Cut(line, " = ", i+2)
		if err != nil {
			return nil, err
		}
		rest = strings.Trim(rest, "()")
		left, right, err := aoc.Cut(rest, ", ", i+2)
		if err != nil {
			return nil, err
		}
		m.nodes[name] = [2]string{left, right}
	}
	return m, nil
}

// steps walks from start until done reports true.
func (m *desertMap) steps(start string, done func(string) bool) (int, error) {
	cur := start
	for n := 0; ; n++ {
		if done(cur) {
			return n, nil
		}
		next, ok := m.nodes[cur]
		if !ok {
			return 0, errors.ErrMissingMarker("node " + cur)
		}
		if m.turns[n%len(m.turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
		if n > len(m.nodes)*len(m.turns) {
			return 0, errors.ErrNoSolution("walk from " + start + " never ends")
		}
	}
}

func (m *desertMap) camelSteps() (int, error) {
	if _, ok := m.nodes["AAA"]; !ok {
		return 0, errors.ErrMissingMarker("AAA node")
	}
	return m.steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// ghostSteps relies on each ghost looping back to its first Z node with the
// same period.
func (m *desertMap) ghostSteps() (int, error) {
	var periods []int
	for name := range m.nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		n, err := m.steps(name, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, n)
	}
	if len(periods) == 0 {
		return 0, errors.ErrMissingMarker("ghost start node")
	}
	return aoc.LCMAll(periods...), nil
}

func solveDay08(_ context.Context, input string) (puzzle.Answer, error) {
	m, err := parseDesertMap(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part1, err := m.camelSteps()
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := m.ghostSteps()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(part1, part2), nil
}
