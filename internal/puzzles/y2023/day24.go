package y2023

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 24, Title: "Never Tell Me The Odds", Solve: solveDay24})
}

const (
	testAreaMin = 200_000_000_000_000
	testAreaMax = 400_000_000_000_000
)

type vec3 [3]int

func (a vec3) sub(b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

type hailstone struct {
	pos, vel vec3
}

func parseHail(input string) ([]hailstone, error) {
	var stones []hailstone
	for i, line := range aoc.NonEmptyLines(input) {
		n := aoc.Ints(line)
		if len(n) != 6 {
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected px, py, pz @ vx, vy, vz")
		}
		stones = append(stones, hailstone{pos: vec3{n[0], n[1], n[2]}, vel: vec3{n[3], n[4], n[5]}})
	}
	if len(stones) < 3 {
		return nil, errors.NewInputError(errors.ErrCodeEmptyInput, "need at least three hailstones").
			WithContext("stones", len(stones))
	}
	return stones, nil
}

// futureCrossings counts pairs whose XY paths cross inside [lo, hi] on both
// axes, ahead of both stones.
func futureCrossings(stones []hailstone, lo, hi float64) int {
	count := 0
	for i, a := range stones {
		for _, b := range stones[i+1:] {
			det := float64(a.vel[0]*b.vel[1] - a.vel[1]*b.vel[0])
			if det == 0 {
				continue
			}
			dx := float64(b.pos[0] - a.pos[0])
			dy := float64(b.pos[1] - a.pos[1])
			t := (dx*float64(b.vel[1]) - dy*float64(b.vel[0])) / det
			s := (dx*float64(a.vel[1]) - dy*float64(a.vel[0])) / det
			if t < 0 || s < 0 {
				continue
			}
			x := float64(a.pos[0]) + t*float64(a.vel[0])
			y := float64(a.pos[1]) + t*float64(a.vel[1])
			if x >= lo && x <= hi && y >= lo && y <= hi {
				count++
			}
		}
	}
	return count
}

// crossMatrix returns the matrix of v x (.) in row-major order.
func crossMatrix(v vec3) [9]float64 {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	return [9]float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	}
}

func cross(a, b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// rockVelocity solves the linear system from stones 0, 1 and 2, written
// relative to stone 0 to keep the coefficients small. For stones i and j
// the rock position P and velocity V satisfy
//
//	(v_j - v_i) x P + (p_i - p_j) x V = p_i x v_i - p_j x v_j
func rockVelocity(stones []hailstone) (vec3, error) {
	origin := stones[0].pos
	rel := func(i int) hailstone { return hailstone{pos: stones[i].pos.sub(origin), vel: stones[i].vel} }

	a := mat.NewDense(6, 6, nil)
	b := mat.NewVecDense(6, nil)
	for row, j := range []int{1, 2} {
		si, sj := rel(0), rel(j)
		dv := crossMatrix(sj.vel.sub(si.vel))
		dp := crossMatrix(si.pos.sub(sj.pos))
		rhs := cross(si.pos, si.vel).sub(cross(sj.pos, sj.vel))
		for r := range 3 {
			for c := range 3 {
				a.Set(row*3+r, c, dv[r*3+c])
				a.Set(row*3+r, 3+c, dp[r*3+c])
			}
			b.SetVec(row*3+r, float64(rhs[r]))
		}
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return vec3{}, errors.ErrNoSolution("rock system is singular").WithContext("cause", err.Error())
	}
	return vec3{
		int(math.Round(x.AtVec(3))),
		int(math.Round(x.AtVec(4))),
		int(math.Round(x.AtVec(5))),
	}, nil
}

// rockPosition recovers the throw position exactly once the velocity is
// known: in the rock's frame every stone path passes through it.
func rockPosition(stones []hailstone, v vec3) (vec3, error) {
	a := stones[0]
	wa := a.vel.sub(v)
	for _, b := range stones[1:] {
		wb := b.vel.sub(v)
		det := wa[0]*wb[1] - wa[1]*wb[0]
		if det == 0 {
			continue
		}
		d := b.pos.sub(a.pos)
		num := d[0]*wb[1] - d[1]*wb[0]
		if num%det != 0 {
			return vec3{}, errors.ErrNoSolution("rock does not hit stones at whole times")
		}
		t := num / det
		return vec3{a.pos[0] + t*wa[0], a.pos[1] + t*wa[1], a.pos[2] + t*wa[2]}, nil
	}
	return vec3{}, errors.ErrNoSolution("every stone is parallel to the first in the rock frame")
}

func rockThrow(stones []hailstone) (int, error) {
	v, err := rockVelocity(stones)
	if err != nil {
		return 0, err
	}
	p, err := rockPosition(stones, v)
	if err != nil {
		return 0, err
	}
	return p[0] + p[1] + p[2], nil
}

func solveDay24(_ context.Context, input string) (puzzle.Answer, error) {
	stones, err := parseHail(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	throw, err := rockThrow(stones)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(futureCrossings(stones, testAreaMin, testAreaMax), throw), nil
}
