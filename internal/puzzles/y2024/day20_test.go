package y2024

import (
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day20Example = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

func TestDay20(t *testing.T) {
	g, err := aoc.ParseGrid(day20Example)
	require.NoError(t, err)
	track, err := raceTrack(g)
	require.NoError(t, err)

	end, _ := g.Find('E')
	assert.Equal(t, 84, track[end])
	assert.Len(t, track, 85)

	tests := []struct {
		length, saving, want int
	}{
		{2, 64, 1},
		{2, 40, 2},
		{2, 20, 5},
		{2, 1, 44},
		{20, 76, 3},
		{20, 74, 7},
		{20, 72, 29},
		{20, 50, 285},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countCheats(track, tt.length, tt.saving), "length=%d saving=%d", tt.length, tt.saving)
	}
}
