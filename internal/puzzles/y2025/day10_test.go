package y2025

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day10Example = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
`

func TestDay10(t *testing.T) {
	answer, err := solveDay10(context.Background(), day10Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "7", Part2: puzzle.Unsolved}, answer)

	_, err = solveDay10(context.Background(), "[#] (1)\n")
	assert.Error(t, err)
	_, err = solveDay10(context.Background(), "[.#] <0>\n")
	assert.Error(t, err)
}

func TestParseFactoryMachine(t *testing.T) {
	m, err := parseFactoryMachine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	require.NoError(t, err)
	want := factoryMachine{
		lights:   2 | 4,
		buttons:  []uint32{8, 2 | 8, 4, 4 | 8, 1 | 4, 1 | 2},
		joltages: []int{3, 5, 4, 7},
	}
	if diff := cmp.Diff(want, m, cmp.AllowUnexported(factoryMachine{})); diff != "" {
		t.Errorf("parseFactoryMachine mismatch (-want +got):\n%s", diff)
	}

	presses, ok := m.fewestPresses()
	require.True(t, ok)
	assert.Equal(t, 2, presses)
}
