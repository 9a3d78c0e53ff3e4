package y2025

import (
	"cmp"
	"context"
	"slices"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 8, Title: "Playground", Solve: solveDay08})
}

const circuitJoins = 1000

type junctionBox struct{ x, y, z int }

func (a junctionBox) dist2(b junctionBox) int {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
	return dx*dx + dy*dy + dz*dz
}

type boxPair struct{ a, b, dist2 int }

// closestPairs lists every pair of boxes, nearest first.
func closestPairs(boxes []junctionBox) []boxPair {
	pairs := make([]boxPair, 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			pairs = append(pairs, boxPair{i, j, boxes[i].dist2(boxes[j])})
		}
	}
	slices.SortStableFunc(pairs, func(p, q boxPair) int { return cmp.Compare(p.dist2, q.dist2) })
	return pairs
}

// circuits is a union-find over box indices.
type circuits struct {
	parent []int
	size   []int
	count  int
}

func newCircuits(n int) *circuits {
	c := &circuits{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range n {
		c.parent[i] = i
		c.size[i] = 1
	}
	return c
}

func (c *circuits) find(i int) int {
	for c.parent[i] != i {
		c.parent[i] = c.parent[c.parent[i]]
		i = c.parent[i]
	}
	return i
}

// join connects a and b and reports whether they were separate circuits.
func (c *circuits) join(a, b int) bool {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return false
	}
	if c.size[ra] < c.size[rb] {
		ra, rb = rb, ra
	}
	c.parent[rb] = ra
	c.size[ra] += c.size[rb]
	c.count--
	return true
}

// largestCircuits connects the joins closest pairs and multiplies the sizes
// of the three largest circuits.
func largestCircuits(boxes []junctionBox, pairs []boxPair, joins int) int {
	c := newCircuits(len(boxes))
	for _, p := range pairs[:min(joins, len(pairs))] {
		c.join(p.a, p.b)
	}
	var sizes []int
	for i := range boxes {
		if c.find(i) == i {
			sizes = append(sizes, c.size[i])
		}
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return aoc.Product(sizes[:min(3, len(sizes))])
}

// finalJoin returns the X product of the pair that links everything into
// one circuit.
func finalJoin(boxes []junctionBox, pairs []boxPair) (int, error) {
	c := newCircuits(len(boxes))
	for _, p := range pairs {
		if c.join(p.a, p.b) && c.count == 1 {
			return boxes[p.a].x * boxes[p.b].x, nil
		}
	}
	return 0, errors.ErrNoSolution("fewer than two junction boxes")
}

func parseJunctionBoxes(input string) ([]junctionBox, error) {
	var boxes []junctionBox
	for i, line := range aoc.NonEmptyLines(input) {
		v, err := aoc.SplitInts(line, ",")
		if err != nil {
			return nil, errors.AtLine(err, i+1)
		}
		if len(v) != 3 {
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected X,Y,Z")
		}
		boxes = append(boxes, junctionBox{v[0], v[1], v[2]})
	}
	if len(boxes) == 0 {
		return nil, errors.ErrEmptyInput()
	}
	return boxes, nil
}

func solveDay08(_ context.Context, input string) (puzzle.Answer, error) {
	boxes, err := parseJunctionBoxes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	pairs := closestPairs(boxes)
	last, err := finalJoin(boxes, pairs)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(largestCircuits(boxes, pairs, circuitJoins), last), nil
}
