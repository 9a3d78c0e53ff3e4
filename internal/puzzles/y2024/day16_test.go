package y2024

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day16Example = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const day16Second = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func TestDay16(t *testing.T) {
	answer, err := solveDay16(context.Background(), day16Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "7036", Part2: "45"}, answer)

	answer, err = solveDay16(context.Background(), day16Second)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "11048", Part2: "64"}, answer)

	_, err = solveDay16(context.Background(), "#####\n#S#E#\n#####\n")
	assert.Error(t, err)
}
