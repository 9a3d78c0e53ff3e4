package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day16Example = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestDay16(t *testing.T) {
	answer, err := solveDay16(context.Background(), day16Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "46", Part2: "51"}, answer)
}

func TestDeflect(t *testing.T) {
	assert.Equal(t, []aoc.Point{aoc.North}, deflect('/', aoc.East))
	assert.Equal(t, []aoc.Point{aoc.West}, deflect('/', aoc.South))
	assert.Equal(t, []aoc.Point{aoc.South}, deflect('\\', aoc.East))
	assert.Equal(t, []aoc.Point{aoc.East}, deflect('\\', aoc.South))
	assert.Equal(t, []aoc.Point{aoc.North, aoc.South}, deflect('|', aoc.West))
	assert.Equal(t, []aoc.Point{aoc.North}, deflect('|', aoc.North))
	assert.Equal(t, []aoc.Point{aoc.East, aoc.West}, deflect('-', aoc.South))
	assert.Equal(t, []aoc.Point{aoc.West}, deflect('.', aoc.West))
}
