package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day09Example = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestDay09(t *testing.T) {
	answer, err := solveDay09(context.Background(), day09Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "114", Part2: "2"}, answer)
}

func TestExtrapolate(t *testing.T) {
	prev, next := extrapolate([]int{10, 13, 16, 21, 30, 45})
	assert.Equal(t, 5, prev)
	assert.Equal(t, 68, next)

	prev, next = extrapolate([]int{7, 7, 7})
	assert.Equal(t, 7, prev)
	assert.Equal(t, 7, next)
}
