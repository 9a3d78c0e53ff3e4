package y2025

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day04Example = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

func TestDay04(t *testing.T) {
	answer, err := solveDay04(context.Background(), day04Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "13", Part2: "43"}, answer)
}

func TestRemoveRollsLeavesStableCore(t *testing.T) {
	g, err := aoc.ParseGrid(day04Example)
	require.NoError(t, err)
	before := g.Count(paperRoll)
	removed := removeRolls(g)
	assert.Equal(t, before-removed, g.Count(paperRoll))
	assert.Empty(t, accessibleRolls(g))
}
