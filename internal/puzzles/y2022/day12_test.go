package y2022

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day12Example = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func TestDay12(t *testing.T) {
	answer, err := solveDay12(context.Background(), day12Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "31", Part2: "29"}, answer)
}

func TestDay12Errors(t *testing.T) {
	_, err := solveDay12(context.Background(), "abc\nabE\n")
	assert.True(t, errors.HasErrorCode(err, errors.ErrCodeMissingMarker))

	_, err = solveDay12(context.Background(), "Sz\nzE\n")
	assert.True(t, errors.HasErrorCode(err, errors.ErrCodeNoSolution))
}
