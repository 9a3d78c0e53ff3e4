package y2024

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day04Example = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

func TestDay04(t *testing.T) {
	answer, err := solveDay04(context.Background(), day04Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "18", Part2: "9"}, answer)

	answer, err = solveDay04(context.Background(), "XMASAMX\n")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "2", Part2: "0"}, answer)
}
