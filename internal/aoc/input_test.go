package aoc

import (
	"testing"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []string{"abc"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"crlf normalised", "a\r\nb\r\n", []string{"a", "b"}},
		{"interior blank kept", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.input))
		})
	}
}

func TestNonEmptyLinesAndBlocks(t *testing.T) {
	input := "\n1\n2\n\n\n3  \n\n"
	assert.Equal(t, []string{"1", "2", "3"}, NonEmptyLines(input))
	assert.Equal(t, [][]string{{"1", "2"}, {"3  "}}, Blocks(input))
	assert.Nil(t, Blocks("\n\n"))
}

func TestInts(t *testing.T) {
	assert.Equal(t, []int{3, -4, 12}, Ints("move 3 from -4 to 12"))
	assert.Equal(t, []int{10, 14}, Uints("10-14"))
	assert.Empty(t, Ints("no numbers"))
}

func TestAtoi(t *testing.T) {
	n, err := Atoi(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Atoi("4x2")
	assert.True(t, errors.IsParseError(err))
	assert.True(t, errors.HasErrorCode(err, errors.ErrCodeBadNumber))

	big, err := Atoi64("9007199254740993")
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), big)
}

func TestFieldsAndSplitInts(t *testing.T) {
	got, err := Fields("1  2\t3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = Fields("1 two 3")
	assert.Error(t, err)

	got, err = SplitInts("75,47,61\n", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, got)
}

func TestCut(t *testing.T) {
	before, after, err := Cut("a: b", ": ", 1)
	require.NoError(t, err)
	assert.Equal(t, "a", before)
	assert.Equal(t, "b", after)

	_, _, err = Cut("a b", ": ", 7)
	require.Error(t, err)
	var perr *errors.PuzzleError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 7, perr.Line)
}
