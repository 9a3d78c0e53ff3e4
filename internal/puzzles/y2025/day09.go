package y2025

import (
	"context"
	"slices"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2025, Day: 9, Title: "Movie Theater", Solve: solveDay09})
}

func tileArea(a, b aoc.Point) int {
	return (aoc.Abs(a.X-b.X) + 1) * (aoc.Abs(a.Y-b.Y) + 1)
}

// theaterFloor is the red tile loop on a compressed grid. Each distinct
// coordinate gets an odd index and the gaps between them even ones, so a
// flood fill from the corner marks everything outside the loop.
type theaterFloor struct {
	xs, ys  []int
	w       int
	outside []int // 2D prefix sums of outside cells, (w+1) wide
}

func compressAxis(vals []int) []int {
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

func newTheaterFloor(red []aoc.Point) *theaterFloor {
	f := &theaterFloor{}
	var xs, ys []int
	for _, p := range red {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	f.xs, f.ys = compressAxis(xs), compressAxis(ys)
	f.w = 2*len(f.xs) + 1
	h := 2*len(f.ys) + 1

	g := aoc.NewGrid(f.w, h, '.')
	for i, p := range red {
		a, b := f.cell(p), f.cell(red[(i+1)%len(red)])
		g.Set(a, '#')
		for a != b {
			a = a.Toward(b)
			g.Set(a, '#')
		}
	}
	out := aoc.FloodFill(g, aoc.P(0, 0), func(_, to aoc.Point) bool { return g.At(to) != '#' })

	f.outside = make([]int, (f.w+1)*(h+1))
	for y := range h {
		for x := range f.w {
			v := 0
			if out[aoc.P(x, y)] {
				v = 1
			}
			f.outside[(y+1)*(f.w+1)+x+1] = v + f.outside[y*(f.w+1)+x+1] + f.outside[(y+1)*(f.w+1)+x] - f.outside[y*(f.w+1)+x]
		}
	}
	return f
}

func (f *theaterFloor) cell(p aoc.Point) aoc.Point {
	x, _ := slices.BinarySearch(f.xs, p.X)
	y, _ := slices.BinarySearch(f.ys, p.Y)
	return aoc.P(2*x+1, 2*y+1)
}

// inside reports whether the rectangle with corners a and b holds only red
// or green tiles.
func (f *theaterFloor) inside(a, b aoc.Point) bool {
	ca, cb := f.cell(a), f.cell(b)
	x0, x1 := min(ca.X, cb.X), max(ca.X, cb.X)+1
	y0, y1 := min(ca.Y, cb.Y), max(ca.Y, cb.Y)+1
	row := f.w + 1
	return f.outside[y1*row+x1]-f.outside[y0*row+x1]-f.outside[y1*row+x0]+f.outside[y0*row+x0] == 0
}

func largestRectangles(red []aoc.Point) (anyRect, insideRect int) {
	floor := newTheaterFloor(red)
	for i, a := range red {
		for _, b := range red[i+1:] {
			area := tileArea(a, b)
			anyRect = max(anyRect, area)
			if area > insideRect && floor.inside(a, b) {
				insideRect = area
			}
		}
	}
	return anyRect, insideRect
}

func solveDay09(_ context.Context, input string) (puzzle.Answer, error) {
	var red []aoc.Point
	for i, line := range aoc.NonEmptyLines(input) {
		v, err := aoc.SplitInts(line, ",")
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		if len(v) != 2 {
			return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "expected X,Y")
		}
		p := aoc.P(v[0], v[1])
		if i > 0 {
			if prev := red[i-1]; prev.X != p.X && prev.Y != p.Y {
				return puzzle.Answer{}, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "tile is not in line with the previous one")
			}
		}
		red = append(red, p)
	}
	if len(red) < 2 {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	anyRect, insideRect := largestRectangles(red)
	return puzzle.NewAnswer(anyRect, insideRect), nil
}
