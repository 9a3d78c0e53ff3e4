package y2023

import (
	"context"
	"strconv"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 18, Title: "Lavaduct Lagoon", Solve: solveDay18})
}

type digStep struct {
	dir aoc.Point
	n   int
}

// hexDirs is indexed by the last digit of the colour code.
var hexDirs = [4]aoc.Point{aoc.East, aoc.South, aoc.West, aoc.North}

func parseDigPlan(input string) (plain, decoded []digStep, err error) {
	for i, line := range aoc.NonEmptyLines(input) {
		fields := strings.Fields(line)
		if len(fields) != 3 || len(fields[0]) != 1 {
			return nil, nil, errors.ErrBadLine(i+1, line, nil)
		}
		dir, ok := aoc.DirFromByte(fields[0][0])
		if !ok {
			return nil, nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "unknown direction")
		}
		n, err := aoc.Atoi(fields[1])
		if err != nil {
			return nil, nil, errors.AtLine(err, i+1)
		}
		plain = append(plain, digStep{dir: dir, n: n})

		code := strings.TrimSuffix(strings.TrimPrefix(fields[2], "(#"), ")")
		if len(code) != 6 || code[5] < '0' || code[5] > '3' {
			return nil, nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "bad colour code")
		}
		dist, err := strconv.ParseInt(code[:5], 16, 64)
		if err != nil {
			return nil, nil, errors.ErrBadLine(i+1, line, err)
		}
		decoded = append(decoded, digStep{dir: hexDirs[code[5]-'0'], n: int(dist)})
	}
	return plain, decoded, nil
}

// lagoonSize counts the dug cells: interior from Pick's theorem plus the
// trench itself.
func lagoonSize(steps []digStep) int {
	pts := make([]aoc.Point, 0, len(steps))
	cur, boundary := aoc.P(0, 0), 0
	for _, s := range steps {
		cur = cur.Add(s.dir.Scale(s.n))
		pts = append(pts, cur)
		boundary += s.n
	}
	twiceArea := aoc.Abs(aoc.Shoelace(pts))
	return (twiceArea+boundary)/2 + 1
}

func solveDay18(_ context.Context, input string) (puzzle.Answer, error) {
	plain, decoded, err := parseDigPlan(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(plain) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	return puzzle.NewAnswer(lagoonSize(plain), lagoonSize(decoded)), nil
}
