package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day07Example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestDay07(t *testing.T) {
	answer, err := solveDay07(context.Background(), day07Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "6440", Part2: "5905"}, answer)
}

func TestClassifyHand(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   handKind
	}{
		{"AAAAA", false, fiveOfAKind},
		{"AA8AA", false, fourOfAKind},
		{"23332", false, fullHouse},
		{"TTT98", false, threeOfAKind},
		{"23432", false, twoPair},
		{"A23A4", false, onePair},
		{"23456", false, highCard},
		{"JJJJJ", true, fiveOfAKind},
		{"QJJQ2", true, fourOfAKind},
		{"KTJJT", true, fourOfAKind},
		{"2345J", true, onePair},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyHand(tt.cards, tt.jokers), tt.cards)
	}
}

func TestCompareHands(t *testing.T) {
	assert.Positive(t, compareHands("33332", "2AAAA", false))
	assert.Positive(t, compareHands("77888", "77788", false))
	assert.Negative(t, compareHands("JKKK2", "QQQQ2", true))
	assert.Zero(t, compareHands("T55J5", "T55J5", true))
}
