package y2024

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day15Small = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

const day15Example = `##########
#..O..O.O#
#......O.#
#.OO..O.O#
#..O@..O.#
#O#..O...#
#O..O..O.#
#.OO.O.OO#
#....O...#
##########

<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
<<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
>^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
<><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^
`

func TestDay15(t *testing.T) {
	answer, err := solveDay15(context.Background(), day15Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "10092", Part2: "9021"}, answer)

	rows, moves, err := parseWarehouse(day15Small)
	require.NoError(t, err)
	sum, err := gpsSum(rows, moves)
	require.NoError(t, err)
	assert.Equal(t, 2028, sum)
}

func TestWidePush(t *testing.T) {
	rows := widenWarehouse([]string{"#######", "#...#.#", "#.....#", "#..OO@#", "#..O..#", "#.....#", "#######"})
	assert.Equal(t, "##....[][]@.##", rows[3])

	g, err := aoc.GridFromLines(rows)
	require.NoError(t, err)
	robot, err := g.MustFind('@')
	require.NoError(t, err)
	for _, c := range []byte("<vv<<^^<<^^") {
		d, _ := aoc.DirFromByte(c)
		robot = push(g, robot, d)
	}
	assert.Equal(t, []string{
		"##############",
		"##...[].##..##",
		"##...@.[]...##",
		"##....[]....##",
		"##..........##",
		"##..........##",
		"##############",
	}, g.Rows())
}
