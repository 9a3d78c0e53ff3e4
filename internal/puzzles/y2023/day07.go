package y2023

import (
	"context"
	"slices"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 7, Title: "Camel Cards", Solve: solveDay07})
}

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type handKind int

const (
	highCard handKind = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type camelHand struct {
	cards string
	bid   int
}

func classifyHand(cards string, jokers bool) handKind {
	counts := aoc.CountAll([]byte(cards))
	wild := 0
	if jokers {
		wild = counts['J']
		delete(counts, 'J')
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	if len(sizes) == 0 {
		sizes = []int{0}
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return fiveOfAKind
	case sizes[0] == 4:
		return fourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return fullHouse
	case sizes[0] == 3:
		return threeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return twoPair
	case sizes[0] == 2:
		return onePair
	}
	return highCard
}

func compareHands(a, b string, jokers bool) int {
	if c := int(classifyHand(a, jokers)) - int(classifyHand(b, jokers)); c != 0 {
		return c
	}
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	for i := range len(a) {
		if c := strings.IndexByte(order, a[i]) - strings.IndexByte(order, b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func winnings(hands []camelHand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b camelHand) int { return compareHands(a.cards, b.cards, jokers) })
	total := 0
	for rank, h := range sorted {
		total += (rank + 1) * h.bid
	}
	return total
}

func solveDay07(_ context.Context, input string) (puzzle.Answer, error) {
	var hands []camelHand
	for i, line := range aoc.NonEmptyLines(input) {
		cards, bidText, err := aoc.Cut(line, " ", i+1)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if len(cards) != 5 || strings.Trim(cards, cardOrder) != "" {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "hand must be 5 cards")
		}
		bid, err := aoc.Atoi(bidText)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		hands = append(hands, camelHand{cards: cards, bid: bid})
	}
	return puzzle.NewAnswer(winnings(hands, false), winnings(hands, true)), nil
}
