package y2025

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day07Example = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
`

func TestDay07(t *testing.T) {
	answer, err := solveDay07(context.Background(), day07Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "21", Part2: "40"}, answer)

	_, err = solveDay07(context.Background(), "...\n.^.\n")
	assert.Error(t, err)
}

func TestAdjacentSplitters(t *testing.T) {
	g, err := aoc.ParseGrid("..S..\n..^^.\n.....\n")
	require.NoError(t, err)
	splits, timelines, err := tachyonBeams(g)
	require.NoError(t, err)
	assert.Equal(t, 1, splits)
	assert.Equal(t, 2, timelines)
}
