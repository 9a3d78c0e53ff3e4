package y2022

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay06(t *testing.T) {
	tests := []struct {
		signal          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		t.Run(tt.signal[:8], func(t *testing.T) {
			assert.Equal(t, tt.packet, markerEnd(tt.signal, 4))
			assert.Equal(t, tt.message, markerEnd(tt.signal, 14))
		})
	}

	answer, err := solveDay06(context.Background(), "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")
	require.NoError(t, err)
	assert.Equal(t, "7", answer.Part1)

	_, err = solveDay06(context.Background(), "aaaaaaaaaaaaaaaa")
	assert.Error(t, err)
}
