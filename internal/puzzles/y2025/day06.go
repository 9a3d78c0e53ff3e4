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
	registry.Register(puzzle.Solution{Year: 2025, Day: 6, Title: "Trash Compactor", Solve: solveDay06})
}

// worksheet is the padded homework sheet; the last row holds the operators.
type worksheet struct {
	rows  []string
	width int
}

func parseWorksheet(input string) (worksheet, error) {
	var ws worksheet
	for _, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) != "" {
			ws.rows = append(ws.rows, line)
			ws.width = max(ws.width, len(line))
		}
	}
	if len(ws.rows) < 2 {
		return ws, errors.ErrEmptyInput()
	}
	for i, row := range ws.rows {
		ws.rows[i] = row + strings.Repeat(" ", ws.width-len(row))
	}
	return ws, nil
}

// problems returns the column spans of each problem; an all-blank column
// separates them.
func (ws worksheet) problems() [][2]int {
	var spans [][2]int
	start := -1
	for x := 0; x <= ws.width; x++ {
		blank := x == ws.width
		if !blank {
			blank = true
			for _, row := range ws.rows {
				if row[x] != ' ' {
					blank = false
					break
				}
			}
		}
		switch {
		case blank && start >= 0:
			spans = append(spans, [2]int{start, x})
			start = -1
		case !blank && start < 0:
			start = x
		}
	}
	return spans
}

func applyOperator(op string, nums []int) (int, error) {
	switch op {
	case "+":
		return aoc.Sum(nums), nil
	case "*":
		return aoc.Product(nums), nil
	}
	return 0, errors.NewParseError(errors.ErrCodeBadLine, "unknown operator").WithContext("operator", op)
}

// grandTotal solves every problem, reading numbers along rows or, with
// columnar set, one number per column read top to bottom.
func (ws worksheet) grandTotal(columnar bool) (int, error) {
	digits := ws.rows[:len(ws.rows)-1]
	ops := ws.rows[len(ws.rows)-1]
	total := 0
	for _, span := range ws.problems() {
		var texts []string
		if columnar {
			for x := span[1] - 1; x >= span[0]; x-- {
				var sb strings.Builder
				for _, row := range digits {
					sb.WriteByte(row[x])
				}
				texts = append(texts, sb.String())
			}
		} else {
			for _, row := range digits {
				texts = append(texts, row[span[0]:span[1]])
			}
		}

		var nums []int
		for _, text := range texts {
			if strings.TrimSpace(text) == "" {
				continue
			}
			n, err := aoc.Atoi(text)
			if err != nil {
				return 0, err
			}
			nums = append(nums, n)
		}
		answer, err := applyOperator(strings.TrimSpace(ops[span[0]:span[1]]), nums)
		if err != nil {
			return 0, err
		}
		total += answer
	}
	return total, nil
}

func solveDay06(_ context.Context, input string) (puzzle.Answer, error) {
	ws, err := parseWorksheet(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	rows, err := ws.grandTotal(false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	cols, err := ws.grandTotal(true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(rows, cols), nil
}
