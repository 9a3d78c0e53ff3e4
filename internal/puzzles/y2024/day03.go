package y2024

import (
	"context"
	"regexp"
	"strconv"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 3, Title: "Mull It Over", Solve: solveDay03})
}

var mulPattern = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// mulSums adds every valid mul instruction, and separately only those not
// disabled by a preceding don't().
func mulSums(memory string) (all, enabled int) {
	on := true
	for _, m := range mulPattern.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			on = true
		case "don't()":
			on = false
		default:
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			all += a * b
			if on {
				enabled += a * b
			}
		}
	}
	return all, enabled
}

func solveDay03(_ context.Context, input string) (puzzle.Answer, error) {
	all, enabled := mulSums(input)
	return puzzle.NewAnswer(all, enabled), nil
}
