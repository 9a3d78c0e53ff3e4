package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day10Square = `.....
.S-7.
.|.|.
.L-J.
.....
`

const day10Complex = `.....
..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const day10Enclosed = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

func TestDay10(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		far, enclosed string
	}{
		{"square", day10Square, "4", "1"},
		{"complex", day10Complex, "8", "1"},
		{"enclosed", day10Enclosed, "80", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := solveDay10(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.far, answer.Part1)
			assert.Equal(t, tt.enclosed, answer.Part2)
		})
	}
}

func TestPipeLoopErrors(t *testing.T) {
	g, err := aoc.ParseGrid("...\n.-.\n...\n")
	require.NoError(t, err)
	_, err = pipeLoop(g)
	assert.Error(t, err)

	g, err = aoc.ParseGrid("...\n.S.\n...\n")
	require.NoError(t, err)
	_, err = pipeLoop(g)
	assert.Error(t, err)
}
