package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 3, Title: "Gear Ratios", Solve: solveDay03})
}

type partNumber struct {
	value  int
	row    int
	lo, hi int // columns [lo, hi)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

func schematicNumbers(g *aoc.Grid) []partNumber {
	var numbers []partNumber
	for y := range g.H {
		row := g.Row(y)
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := partNumber{row: y, lo: x}
			for x < len(row) && isDigit(row[x]) {
				n.value = n.value*10 + int(row[x]-'0')
				x++
			}
			n.hi = x
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// touches reports whether p is in the box around the number, diagonals
// included.
func (n partNumber) touches(p aoc.Point) bool {
	return p.Y >= n.row-1 && p.Y <= n.row+1 && p.X >= n.lo-1 && p.X <= n.hi
}

func solveDay03(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	numbers := schematicNumbers(g)

	var symbols []aoc.Point
	g.Points(func(p aoc.Point, c byte) {
		if isSymbol(c) {
			symbols = append(symbols, p)
		}
	})

	partSum := 0
	for _, n := range numbers {
		for _, s := range symbols {
			if n.touches(s) {
				partSum += n.value
				break
			}
		}
	}

	ratios := 0
	for _, s := range symbols {
		if g.At(s) != '*' {
			continue
		}
		var adjacent []int
		for _, n := range numbers {
			if n.touches(s) {
				adjacent = append(adjacent, n.value)
			}
		}
		if len(adjacent) == 2 {
			ratios += adjacent[0] * adjacent[1]
		}
	}
	return puzzle.NewAnswer(partSum, ratios), nil
}
