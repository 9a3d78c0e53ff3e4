package y2024

import (
	"testing"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day14Example = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
`

func TestDay14(t *testing.T) {
	robots, err := parseRobots(day14Example)
	require.NoError(t, err)
	assert.Equal(t, 12, safetyFactor(robots, 11, 7, 100))

	r := robot{pos: aoc.P(2, 4), vel: aoc.P(2, -3)}
	assert.Equal(t, aoc.P(1, 3), r.after(5, 11, 7))
}

func TestTreeFrame(t *testing.T) {
	// Three robots line up on row 0 after two seconds.
	robots := []robot{
		{pos: aoc.P(0, 2), vel: aoc.P(0, -1)},
		{pos: aoc.P(1, 4), vel: aoc.P(0, -2)},
		{pos: aoc.P(2, 0), vel: aoc.P(0, 0)},
	}
	frame, ok := treeFrame(robots, 5, 5, 2)
	require.True(t, ok)
	assert.Equal(t, 2, frame)

	_, ok = treeFrame(robots[:1], 5, 5, 2)
	assert.False(t, ok)
}
