package y2023

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day05Example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestDay05(t *testing.T) {
	answer, err := solveDay05(context.Background(), day05Example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "35", Part2: "46"}, answer)
}

func TestAlmanacMapApply(t *testing.T) {
	m := almanacMap{
		{src: aoc.Interval{Lo: 50, Hi: 97}, shift: 2},
		{src: aoc.Interval{Lo: 98, Hi: 99}, shift: -48},
	}
	assert.Equal(t, 81, m.lookup(79))
	assert.Equal(t, 14, m.lookup(14))
	assert.Equal(t, 51, m.lookup(99))

	got := m.apply([]aoc.Interval{{Lo: 45, Hi: 99}})
	assert.Equal(t, []aoc.Interval{{Lo: 45, Hi: 49}, {Lo: 50, Hi: 51}, {Lo: 52, Hi: 99}}, got)

	got = m.apply([]aoc.Interval{{Lo: 96, Hi: 105}})
	assert.Equal(t, []aoc.Interval{{Lo: 50, Hi: 51}, {Lo: 98, Hi: 99}, {Lo: 100, Hi: 105}}, got)
}

func TestParseAlmanacErrors(t *testing.T) {
	_, _, err := parseAlmanac("")
	assert.Error(t, err)

	_, _, err = parseAlmanac("seed: 1 2\n")
	assert.Error(t, err)

	_, _, err = parseAlmanac("seeds: 1 2\n\nmap:\n1 2\n")
	assert.Error(t, err)
}
