package y2024

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 17, Title: "Chronospatial Computer", Solve: solveDay17})
}

// Opcodes of the three-bit computer.
const (
	opADV = iota
	opBXL
	opBST
	opJNZ
	opBXC
	opOUT
	opBDV
	opCDV
)

type chronoComputer struct {
	a, b, c int
	program []int
}

func parseChronoComputer(input string) (*chronoComputer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 3 || len(blocks[1]) != 1 {
		return nil, errors.ErrMissingMarker("three registers and a program")
	}
	var regs [3]int
	for i, line := range blocks[0] {
		_, value, err := aoc.Cut(line, ":", i+1)
		if err != nil {
			return nil, err
		}
		if regs[i], err = aoc.Atoi(value); err != nil {
			return nil, errors.AtLine(err, i+1)
		}
	}
	_, text, err := aoc.Cut(blocks[1][0], ":", 5)
	if err != nil {
		return nil, err
	}
	program, err := aoc.SplitInts(text, ",")
	if err != nil {
		return nil, errors.AtLine(err, 5)
	}
	for _, v := range program {
		if v < 0 || v > 7 {
			return nil, errors.ErrBadNumber(strconv.Itoa(v), nil).WithContext("reason", "not a three-bit value")
		}
	}
	return &chronoComputer{a: regs[0], b: regs[1], c: regs[2], program: program}, nil
}

// run executes the program with register A set to a and returns its output.
func (cc *chronoComputer) run(a int) ([]int, error) {
	regA, regB, regC := a, cc.b, cc.c
	combo := func(operand int) (int, error) {
		switch operand {
		case 4:
			return regA, nil
		case 5:
			return regB, nil
		case 6:
			return regC, nil
		case 7:
			return 0, errors.ErrNoSolution("combo operand 7 is reserved")
		}
		return operand, nil
	}

	var out []int
	for ip := 0; ip+1 < len(cc.program); ip += 2 {
		op, operand := cc.program[ip], cc.program[ip+1]
		switch op {
		case opBXL:
			regB ^= operand
			continue
		case opJNZ:
			if regA != 0 {
				ip = operand - 2
			}
			continue
		case opBXC:
			regB ^= regC
			continue
		}

		value, err := combo(operand)
		if err != nil {
			return nil, err
		}
		switch op {
		case opADV:
			regA >>= value
		case opBST:
			regB = value % 8
		case opOUT:
			out = append(out, value%8)
		case opBDV:
			regB = regA >> value
		case opCDV:
			regC = regA >> value
		}
	}
	return out, nil
}

// quine finds the lowest A that makes the program print itself. Programs of
// this shape consume three bits of A per output, so A is built one octal
// digit at a time, matching the output from its end.
func (cc *chronoComputer) quine() (int, error) {
	candidates := []int{0}
	for n := 1; n <= len(cc.program); n++ {
		want := cc.program[len(cc.program)-n:]
		var next []int
		for _, prefix := range candidates {
			for digit := range 8 {
				a := prefix*8 + digit
				out, err := cc.run(a)
				if err != nil {
					return 0, err
				}
				if slices.Equal(out, want) {
					next = append(next, a)
				}
			}
		}
		if len(next) == 0 {
			return 0, errors.ErrNoSolution("no register value reproduces the program")
		}
		candidates = next
	}
	return slices.Min(candidates), nil
}

func joinOutput(out []int) string {
	parts := make([]string, len(out))
	for i, v := range out {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func solveDay17(_ context.Context, input string) (puzzle.Answer, error) {
	cc, err := parseChronoComputer(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	out, err := cc.run(cc.a)
	if err != nil {
		return puzzle.Answer{}, err
	}
	a, err := cc.quine()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(joinOutput(out), a), nil
}
