package y2024

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 14, Title: "Restroom Redoubt", Solve: solveDay14})
}

const (
	bathroomWidth  = 101
	bathroomHeight = 103
	// treeRun is how many robots must stand side by side in a row.
	treeRun = 10
)

type robot struct {
	pos, vel aoc.Point
}

func parseRobots(input string) ([]robot, error) {
	var robots []robot
	for i, line := range aoc.NonEmptyLines(input) {
		n := aoc.Ints(line)
		if len(n) != 4 {
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected p=x,y v=x,y")
		}
		robots = append(robots, robot{pos: aoc.P(n[0], n[1]), vel: aoc.P(n[2], n[3])})
	}
	return robots, nil
}

func (r robot) after(seconds, w, h int) aoc.Point {
	p := r.pos.Add(r.vel.Scale(seconds))
	return aoc.P(aoc.Mod(p.X, w), aoc.Mod(p.Y, h))
}

func safetyFactor(robots []robot, w, h, seconds int) int {
	var quadrants [4]int
	for _, r := range robots {
		p := r.after(seconds, w, h)
		if p.X == w/2 || p.Y == h/2 {
			continue
		}
		q := 0
		if p.X > w/2 {
			q++
		}
		if p.Y > h/2 {
			q += 2
		}
		quadrants[q]++
	}
	return aoc.Product(quadrants[:])
}

// treeFrame returns the first second at which some row holds more than run
// robots side by side. Positions repeat after w*h seconds.
func treeFrame(robots []robot, w, h, run int) (int, bool) {
	for s := range w * h {
		g := aoc.NewGrid(w, h, '.')
		for _, r := range robots {
			g.Set(r.after(s, w, h), '#')
		}
		for y := range h {
			streak := 0
			for _, c := range g.Row(y) {
				if c != '#' {
					streak = 0
					continue
				}
				if streak++; streak > run {
					return s, true
				}
			}
		}
	}
	return 0, false
}

func solveDay14(_ context.Context, input string) (puzzle.Answer, error) {
	robots, err := parseRobots(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part1 := safetyFactor(robots, bathroomWidth, bathroomHeight, 100)
	frame, ok := treeFrame(robots, bathroomWidth, bathroomHeight, treeRun)
	if !ok {
		return puzzle.NewAnswer(part1, nil), nil
	}
	return puzzle.NewAnswer(part1, frame), nil
}
