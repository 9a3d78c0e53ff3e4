package y2024

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day13Example = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
`

func TestDay13(t *testing.T) {
	answer, err := solveDay13(context.Background(), day13Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "480", Part2: "875318608908"}, answer)
}

func TestClawTokens(t *testing.T) {
	machines, err := parseClawMachines(day13Example)
	require.NoError(t, err)
	require.Len(t, machines, 4)

	n, ok := machines[0].tokens(0)
	require.True(t, ok)
	assert.Equal(t, 280, n)

	_, ok = machines[1].tokens(0)
	assert.False(t, ok)
	_, ok = machines[1].tokens(prizeOffset)
	assert.True(t, ok)

	_, err = parseClawMachines("Button A: X+94, Y+34\nPrize: X=8400, Y=5400\n")
	assert.Error(t, err)
}
