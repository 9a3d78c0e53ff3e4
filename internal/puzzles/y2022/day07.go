package y2022

import (
	"context"
	"path"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 7, Title: "No Space Left On Device", Solve: solveDay07})
}

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
)

// dirSizes replays the terminal session and returns the total size of every
// directory keyed by absolute path.
func dirSizes(input string) (map[string]int, error) {
	sizes := map[string]int{"/": 0}
	cwd := "/"
	for i, line := range aoc.NonEmptyLines(input) {
		fields := strings.Fields(line)
		switch {
		case fields[0] == "$" && len(fields) == 3 && fields[1] == "cd":
			switch fields[2] {
			case "/":
				cwd = "/"
			case "..":
				cwd = path.Dir(cwd)
			default:
				cwd = path.Join(cwd, fields[2])
			}
			if _, ok := sizes[cwd]; !ok {
				sizes[cwd] = 0
			}
		case fields[0] == "$" && len(fields) == 2 && fields[1] == "ls":
		case fields[0] == "dir" && len(fields) == 2:
		case len(fields) == 2:
			n, err := aoc.Atoi(fields[0])
			if err != nil {
				return nil, errors.AtLine(err, i+1)
			}
			// Charge the file to cwd and every ancestor.
			for dir := cwd; ; dir = path.Dir(dir) {
				sizes[dir] += n
				if dir == "/" {
					break
				}
			}
		default:
			return nil, errors.ErrBadLine(i+1, line, nil)
		}
	}
	return sizes, nil
}

func solveDay07(_ context.Context, input string) (puzzle.Answer, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	small := 0
	for _, size := range sizes {
		if size <= 100_000 {
			small += size
		}
	}

	need := updateSize - (diskSize - sizes["/"])
	best := sizes["/"]
	for _, size := range sizes {
		if size >= need && size < best {
			best = size
		}
	}
	return puzzle.NewAnswer(small, best), nil
}
