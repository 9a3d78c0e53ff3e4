package y2024

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 21, Title: "Keypad Conundrum", Solve: solveDay21})
}

// keypad maps each key to its position; the gap is at gap.
type keypad struct {
	keys map[byte]aoc.Point
	gap  aoc.Point
}

func newKeypad(rows ...string) keypad {
	k := keypad{keys: map[byte]aoc.Point{}}
	for y, row := range rows {
		for x := range len(row) {
			if row[x] == ' ' {
				k.gap = aoc.P(x, y)
				continue
			}
			k.keys[row[x]] = aoc.P(x, y)
		}
	}
	return k
}

var (
	numericPad     = newKeypad("789", "456", "123", " 0A")
	directionalPad = newKeypad(" ^A", "<v>")
)

// routes returns the button sequences (each ending in A) that move a robot
// arm from a to b with all horizontal or all vertical moves first, skipping
// any that pass over the gap.
func (k keypad) routes(a, b byte) []string {
	from, to := k.keys[a], k.keys[b]
	d := to.Sub(from)
	horiz := strings.Repeat(">", max(d.X, 0)) + strings.Repeat("<", max(-d.X, 0))
	vert := strings.Repeat("v", max(d.Y, 0)) + strings.Repeat("^", max(-d.Y, 0))

	var out []string
	if aoc.P(to.X, from.Y) != k.gap {
		out = append(out, horiz+vert+"A")
	}
	if aoc.P(from.X, to.Y) != k.gap && horiz != "" && vert != "" {
		out = append(out, vert+horiz+"A")
	}
	return out
}

type pressKey struct {
	a, b  byte
	depth int
}

type pressCounter struct {
	robots int
	memo   map[pressKey]int
}

// presses returns the human button presses needed to type seq on the
// keypad at the given depth; depth 0 is the numeric keypad.
func (pc *pressCounter) presses(seq string, depth int) int {
	if depth > pc.robots {
		return len(seq)
	}
	pad := directionalPad
	if depth == 0 {
		pad = numericPad
	}
	total := 0
	prev := byte('A')
	for i := range len(seq) {
		total += pc.move(pad, prev, seq[i], depth)
		prev = seq[i]
	}
	return total
}

func (pc *pressCounter) move(pad keypad, a, b byte, depth int) int {
	key := pressKey{a, b, depth}
	if n, ok := pc.memo[key]; ok {
		return n
	}
	best := -1
	for _, route := range pad.routes(a, b) {
		if n := pc.presses(route, depth+1); best < 0 || n < best {
			best = n
		}
	}
	pc.memo[key] = best
	return best
}

func complexity(codes []string, robots int) int {
	pc := &pressCounter{robots: robots, memo: map[pressKey]int{}}
	total := 0
	for _, code := range codes {
		total += pc.presses(code, 0) * aoc.Ints(code)[0]
	}
	return total
}

func solveDay21(_ context.Context, input string) (puzzle.Answer, error) {
	codes := aoc.NonEmptyLines(input)
	for i, code := range codes {
		if len(aoc.Ints(code)) != 1 || strings.Trim(code, "0123456789A") != "" || !strings.HasSuffix(code, "A") {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, code, nil).WithContext("reason", "not a door code")
		}
	}
	if len(codes) == 0 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	return puzzle.NewAnswer(complexity(codes, 2), complexity(codes, 25)), nil
}
