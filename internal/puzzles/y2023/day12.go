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
	registry.Register(puzzle.Solution{Year: 2023, Day: 12, Title: "Hot Springs", Solve: solveDay12})
}

// springArrangements counts the ways to resolve every '?' in row so that
// the runs of '#' match groups exactly.
func springArrangements(row string, groups []int) int {
	// ways[g] counts arrangements of row[i:] that place groups[g:].
	n := len(row)
	ways := make([][]int, n+2)
	for i := range ways {
		ways[i] = make([]int, len(groups)+1)
	}
	ways[n][len(groups)] = 1
	ways[n+1][len(groups)] = 1

	// canPlace reports whether a run of size can start at i and be followed
	// by a gap or the end of the row.
	canPlace := func(i, size int) bool {
		if i+size > n || strings.ContainsRune(row[i:i+size], '.') {
			return false
		}
		return i+size == n || row[i+size] != '#'
	}

	for i := n - 1; i >= 0; i-- {
		for g := len(groups); g >= 0; g-- {
			total := 0
			if row[i] != '#' {
				total += ways[i+1][g]
			}
			if row[i] != '.' && g < len(groups) && canPlace(i, groups[g]) {
				total += ways[min(n+1, i+groups[g]+1)][g+1]
			}
			ways[i][g] = total
		}
	}
	return ways[0][0]
}

func unfoldSprings(row string, groups []int) (string, []int) {
	rows := make([]string, 5)
	unfolded := make([]int, 0, len(groups)*5)
	for i := range rows {
		rows[i] = row
		unfolded = append(unfolded, groups...)
	}
	return strings.Join(rows, "?"), unfolded
}

func solveDay12(_ context.Context, input string) (puzzle.Answer, error) {
	folded, unfolded := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		row, groupText, err := aoc.Cut(line, " ", i+1)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if strings.Trim(row, ".#?") != "" {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "unknown spring state")
		}
		groups, err := aoc.SplitInts(groupText, ",")
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		folded += springArrangements(row, groups)
		unfolded += springArrangements(unfoldSprings(row, groups))
	}
	return puzzle.NewAnswer(folded, unfolded), nil
}
