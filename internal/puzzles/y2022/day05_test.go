package y2022

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day05Example = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestDay05(t *testing.T) {
	answer, err := solveDay05(context.Background(), day05Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "CMZ", Part2: "MCD"}, answer)
}

func TestParseCrates(t *testing.T) {
	stacks, steps, err := parseCrates(day05Example)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("ZN"), []byte("MCD"), []byte("P")}, stacks)
	assert.Len(t, steps, 4)
	assert.Equal(t, crateStep{count: 3, from: 0, to: 2}, steps[1])
}

func TestDay05TooManyCrates(t *testing.T) {
	_, err := solveDay05(context.Background(), "[A]\n 1 \n\nmove 2 from 1 to 1\n")
	assert.Error(t, err)
}
