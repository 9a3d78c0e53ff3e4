package y2024

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day08Example = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

func TestDay08(t *testing.T) {
	answer, err := solveDay08(context.Background(), day08Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "14", Part2: "34"}, answer)
}

func TestHarmonicsT(t *testing.T) {
	g, err := aoc.ParseGrid(`T.........
...T......
.T........
..........
..........
..........
..........
..........
..........
..........
`)
	require.NoError(t, err)
	assert.Equal(t, 9, antinodes(g, true))
}
