package y2022

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 5, Title: "Supply Stacks", Solve: solveDay05})
}

var crateMove = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

type crateStep struct{ count, from, to int }

// parseCrates reads the drawing into stacks (bottom first) and the moves.
func parseCrates(input string) ([][]byte, []crateStep, error) {
	var drawing []string
	var steps []crateStep
	for i, line := range aoc.Lines(input) {
		switch {
		case strings.TrimSpace(line) == "":
		case strings.HasPrefix(line, "move"):
			m := crateMove.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				return nil, nil, errors.ErrBadLine(i+1, line, nil)
			}
			count, _ := aoc.Atoi(m[1])
			from, _ := aoc.Atoi(m[2])
			to, _ := aoc.Atoi(m[3])
			steps = append(steps, crateStep{count, from - 1, to - 1})
		default:
			drawing = append(drawing, line)
		}
	}
	if len(drawing) < 1 {
		return nil, nil, errors.ErrMissingMarker("crate drawing")
	}

	// The last drawing line numbers the stacks.
	labels := strings.Fields(drawing[len(drawing)-1])
	stacks := make([][]byte, len(labels))
	for row := len(drawing) - 2; row >= 0; row-- {
		line := drawing[row]
		for s := range stacks {
			col := 1 + 4*s
			if col < len(line) && line[col] != ' ' {
				stacks[s] = append(stacks[s], line[col])
			}
		}
	}

	for i, step := range steps {
		if step.from < 0 || step.from >= len(stacks) || step.to < 0 || step.to >= len(stacks) {
			return nil, nil, errors.NewInputError(errors.ErrCodeValidationFailed, "move refers to a missing stack").
				WithContext("move", i+1)
		}
	}
	return stacks, steps, nil
}

func runCrane(stacks [][]byte, steps []crateStep, keepOrder bool) (string, error) {
	work := make([][]byte, len(stacks))
	for i, s := range stacks {
		work[i] = slices.Clone(s)
	}
	for i, step := range steps {
		from := work[step.from]
		if step.count > len(from) {
			return "", errors.ErrNoSolution("move takes more crates than the stack holds").
				WithContext("move", i+1)
		}
		moved := slices.Clone(from[len(from)-step.count:])
		if !keepOrder {
			slices.Reverse(moved)
		}
		work[step.from] = from[:len(from)-step.count]
		work[step.to] = append(work[step.to], moved...)
	}

	var tops strings.Builder
	for _, s := range work {
		if len(s) > 0 {
			tops.WriteByte(s[len(s)-1])
		}
	}
	return tops.String(), nil
}

func solveDay05(_ context.Context, input string) (puzzle.Answer, error) {
	stacks, steps, err := parseCrates(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part1, err := runCrane(stacks, steps, false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := runCrane(stacks, steps, true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: part1, Part2: part2}, nil
}
