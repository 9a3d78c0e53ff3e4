package y2022

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay08(t *testing.T) {
	answer, err := solveDay08(context.Background(), "30373\n25512\n65332\n33549\n35390\n")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "21", Part2: "8"}, answer)

	_, err = solveDay08(context.Background(), "303\n25\n")
	assert.Error(t, err)
}
