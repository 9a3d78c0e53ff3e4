package y2022

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 9, Title: "Rope Bridge", Solve: solveDay09})
}

type ropeMove struct {
	dir   aoc.Point
	steps int
}

func parseRopeMoves(input string) ([]ropeMove, error) {
	var moves []ropeMove
	for i, line := range aoc.NonEmptyLines(input) {
		dirText, stepText, ok := strings.Cut(line, " ")
		if !ok || len(dirText) != 1 {
			return nil, errors.ErrBadLine(i+1, line, nil)
		}
		dir, ok := aoc.DirFromByte(dirText[0])
		if !ok {
			return nil, errors.ErrBadLine(i+1, line, nil)
		}
		steps, err := aoc.Atoi(stepText)
		if err != nil {
			return nil, errors.AtLine(err, i+1)
		}
		moves = append(moves, ropeMove{dir, steps})
	}
	return moves, nil
}

// tailVisits simulates a rope of knots and counts the tail's distinct cells.
func tailVisits(moves []ropeMove, knots int) int {
	rope := make([]aoc.Point, knots)
	visited := map[aoc.Point]bool{rope[knots-1]: true}
	for _, m := range moves {
		for range m.steps {
			rope[0] = rope[0].Add(m.dir)
			for k := 1; k < knots; k++ {
				if rope[k].ChebDist(rope[k-1]) <= 1 {
					break
				}
				rope[k] = rope[k].Toward(rope[k-1])
			}
			visited[rope[knots-1]] = true
		}
	}
	return len(visited)
}

func solveDay09(_ context.Context, input string) (puzzle.Answer, error) {
	moves, err := parseRopeMoves(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(tailVisits(moves, 2), tailVisits(moves, 10)), nil
}
