package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day22Example = `1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
`

func TestDay22(t *testing.T) {
	answer, err := solveDay22(context.Background(), day22Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "5", Part2: "7"}, answer)
}

func TestSettle(t *testing.T) {
	bricks, err := parseBricks(day22Example)
	require.NoError(t, err)
	stack := settle(bricks)

	// A holds up B and C; G rests on F alone.
	assert.ElementsMatch(t, []int{1, 2}, stack.supports[0])
	assert.Equal(t, []int{5}, stack.supporters[6])
	assert.Equal(t, 6, stack.chainReaction(0))
	assert.Equal(t, 1, stack.chainReaction(5))

	_, err = parseBricks("1,0,1~1,2\n")
	assert.Error(t, err)
}
