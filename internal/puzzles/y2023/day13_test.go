package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day13Example = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
`

func TestDay13(t *testing.T) {
	answer, err := solveDay13(context.Background(), day13Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "405", Part2: "400"}, answer)
}

func TestMirrorScore(t *testing.T) {
	blocks := aoc.Blocks(day13Example)
	first, err := aoc.GridFromLines(blocks[0])
	require.NoError(t, err)

	score, ok := mirrorScore(first, 0)
	require.True(t, ok)
	assert.Equal(t, 5, score)

	score, ok = mirrorScore(first, 1)
	require.True(t, ok)
	assert.Equal(t, 300, score)

	g, err := aoc.ParseGrid("#.\n..\n")
	require.NoError(t, err)
	_, ok = mirrorScore(g, 0)
	assert.False(t, ok)
}
