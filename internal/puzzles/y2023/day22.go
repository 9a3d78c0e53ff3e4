package y2023

import (
	"context"
	"slices"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 22, Title: "Sand Slabs", Solve: solveDay22})
}

type brick struct {
	x, y, z aoc.Interval
}

type brickStack struct {
	supports   [][]int // bricks resting on i
	supporters [][]int // bricks i rests on
}

func parseBricks(input string) ([]brick, error) {
	var bricks []brick
	for i, line := range aoc.NonEmptyLines(input) {
		n := aoc.Ints(line)
		if len(n) != 6 {
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected x,y,z~x,y,z")
		}
		bricks = append(bricks, brick{x: aoc.Span(n[0], n[3]), y: aoc.Span(n[1], n[4]), z: aoc.Span(n[2], n[5])})
	}
	return bricks, nil
}

// settle drops every brick as far as it falls and records which bricks
// rest on which.
func settle(bricks []brick) brickStack {
	order := slices.Clone(bricks)
	slices.SortFunc(order, func(a, b brick) int { return a.z.Lo - b.z.Lo })

	type top struct{ z, id int }
	heights := map[aoc.Point]top{}
	stack := brickStack{supports: make([][]int, len(order)), supporters: make([][]int, len(order))}

	for id, b := range order {
		floor := 0
		for x := b.x.Lo; x <= b.x.Hi; x++ {
			for y := b.y.Lo; y <= b.y.Hi; y++ {
				floor = max(floor, heights[aoc.P(x, y)].z)
			}
		}
		height := b.z.Len()
		for x := b.x.Lo; x <= b.x.Hi; x++ {
			for y := b.y.Lo; y <= b.y.Hi; y++ {
				p := aoc.P(x, y)
				if under, ok := heights[p]; ok && under.z == floor && floor > 0 &&
					!slices.Contains(stack.supporters[id], under.id) {
					stack.supporters[id] = append(stack.supporters[id], under.id)
					stack.supports[under.id] = append(stack.supports[under.id], id)
				}
				heights[p] = top{z: floor + height, id: id}
			}
		}
	}
	return stack
}

// chainReaction counts the other bricks that fall when id is removed.
func (s brickStack) chainReaction(id int) int {
	falling := map[int]bool{id: true}
	queue := []int{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, above := range s.supports[cur] {
			if falling[above] {
				continue
			}
			all := true
			for _, below := range s.supporters[above] {
				if !falling[below] {
					all = false
					break
				}
			}
			if all {
				falling[above] = true
				queue = append(queue, above)
			}
		}
	}
	return len(falling) - 1
}

func solveDay22(_ context.Context, input string) (puzzle.Answer, error) {
	bricks, err := parseBricks(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	stack := settle(bricks)

	safe, fallen := 0, 0
	for id := range bricks {
		n := stack.chainReaction(id)
		if n == 0 {
			safe++
		}
		fallen += n
	}
	return puzzle.NewAnswer(safe, fallen), nil
}
