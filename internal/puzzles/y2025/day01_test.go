package y2025

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day01Example = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
`

func TestDay01(t *testing.T) {
	answer, err := solveDay01(context.Background(), day01Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "3", Part2: "6"}, answer)

	_, err = solveDay01(context.Background(), "X10\n")
	assert.Error(t, err)
	_, err = solveDay01(context.Background(), "Lten\n")
	assert.Error(t, err)
}

func TestTurnDial(t *testing.T) {
	tests := []struct {
		name           string
		pos, clicks    int
		wantPos, zeros int
	}{
		{"right wraps many times", 50, 1000, 50, 10},
		{"left onto zero", 5, -5, 0, 1},
		{"left from zero", 0, -5, 95, 0},
		{"left from zero full turn", 0, -100, 0, 1},
		{"right onto zero", 52, 48, 0, 1},
		{"no crossing", 10, -3, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, zeros := turnDial(tt.pos, tt.clicks)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.zeros, zeros)
		})
	}
}
