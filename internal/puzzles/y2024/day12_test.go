package y2024

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day12Example = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`

func TestDay12(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  puzzle.Answer
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC\n", puzzle.Answer{Part1: "140", Part2: "80"}},
		{"nested", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n", puzzle.Answer{Part1: "772", Part2: "436"}},
		{"e shape", "EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE\n", puzzle.Answer{Part1: "692", Part2: "236"}},
		{"large", day12Example, puzzle.Answer{Part1: "1930", Part2: "1206"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := solveDay12(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, answer)
		})
	}
}
