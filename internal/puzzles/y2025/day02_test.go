package y2025

import (
	"context"
	"maps"
	"slices"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day02Example = `11-22,95-115,998-1012,1188511880-1188511890,222220-222224,
1698522-1698528,446443-446449,38593856-38593862,565653-565659,
824824821-824824827,2121212118-2121212124
`

func TestDay02(t *testing.T) {
	answer, err := solveDay02(context.Background(), day02Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "1227775554", Part2: "4174379265"}, answer)

	_, err = solveDay02(context.Background(), "22-11")
	assert.Error(t, err)
}

func TestRepeatedIDs(t *testing.T) {
	sorted := func(ids map[int]bool) []int { return slices.Sorted(maps.Keys(ids)) }

	assert.Equal(t, []int{11, 22}, sorted(repeatedIDs(11, 22, true)))
	assert.Equal(t, []int{99}, sorted(repeatedIDs(95, 115, true)))
	assert.Equal(t, []int{99, 111}, sorted(repeatedIDs(95, 115, false)))
	assert.Equal(t, []int{999, 1010}, sorted(repeatedIDs(998, 1012, false)))
	assert.Equal(t, []int{2727227272, 2727272727}, sorted(repeatedIDs(2727216511, 2727316897, false)))
	assert.Empty(t, repeatedIDs(1698522, 1698528, false))
	// 222222 repeats "2", "22" and "222" but counts once.
	assert.Equal(t, []int{222222}, sorted(repeatedIDs(222220, 222224, false)))
	assert.Equal(t, []int{11, 22}, sorted(repeatedIDs(1, 22, false)))
}
