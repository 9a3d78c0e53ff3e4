package aoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/conneroisu/adventofcode/internal/errors"
)

// Grid is a rectangular byte grid addressed by Point (X = column, Y = row).
type Grid struct {
	W, H  int
	Cells []byte
}

// NewGrid returns a w x h grid filled with fill.
func NewGrid(w, h int, fill byte) *Grid {
	cells := bytes.Repeat([]byte{fill}, w*h)
	return &Grid{W: w, H: h, Cells: cells}
}

// ParseGrid builds a grid from lines of equal width. Blank lines are skipped.
func ParseGrid(input string) (*Grid, error) {
	return GridFromLines(NonEmptyLines(input))
}

// GridFromLines builds a grid from lines that must all have the same width.
func GridFromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, errors.ErrEmptyInput()
	}
	w := len(lines[0])
	g := &Grid{W: w, H: len(lines), Cells: make([]byte, 0, w*len(lines))}
	for i, line := range lines {
		if len(line) != w {
			return nil, errors.NewParseError(errors.ErrCodeRaggedGrid,
				fmt.Sprintf("row has width %d, expected %d", len(line), w)).
				WithLocation("", i+1, 0)
		}
		g.Cells = append(g.Cells, line...)
	}
	return g, nil
}

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the cell at p, which must be in bounds.
func (g *Grid) At(p Point) byte {
	return g.Cells[p.Y*g.W+p.X]
}

// Get returns the cell at p and whether p is in bounds.
func (g *Grid) Get(p Point) (byte, bool) {
	if !g.In(p) {
		return 0, false
	}
	return g.At(p), true
}

// GetOr returns the cell at p, or def outside the grid.
func (g *Grid) GetOr(p Point, def byte) byte {
	if !g.In(p) {
		return def
	}
	return g.At(p)
}

// Set writes c at p, which must be in bounds.
func (g *Grid) Set(p Point, c byte) {
	g.Cells[p.Y*g.W+p.X] = c
}

// Index converts p to its offset in Cells.
func (g *Grid) Index(p Point) int {
	return p.Y*g.W + p.X
}

// PointAt converts an offset in Cells back to a Point.
func (g *Grid) PointAt(i int) Point {
	return P(i%g.W, i/g.W)
}

// Find returns the first point holding c in row-major order.
func (g *Grid) Find(c byte) (Point, bool) {
	i := bytes.IndexByte(g.Cells, c)
	if i < 0 {
		return Point{}, false
	}
	return g.PointAt(i), true
}

// MustFind is Find that reports a missing-marker error.
func (g *Grid) MustFind(c byte) (Point, error) {
	p, ok := g.Find(c)
	if !ok {
		return Point{}, errors.ErrMissingMarker(fmt.Sprintf("%q tile", c))
	}
	return p, nil
}

// FindAll returns every point holding c in row-major order.
func (g *Grid) FindAll(c byte) []Point {
	var result []Point
	for i, cell := range g.Cells {
		if cell == c {
			result = append(result, g.PointAt(i))
		}
	}
	return result
}

// Count returns how many cells hold c.
func (g *Grid) Count(c byte) int {
	return bytes.Count(g.Cells, []byte{c})
}

// Points calls fn for every point in row-major order.
func (g *Grid) Points(fn func(p Point, c byte)) {
	for i, cell := range g.Cells {
		fn(g.PointAt(i), cell)
	}
}

// Row returns row y as a slice aliasing the grid.
func (g *Grid) Row(y int) []byte {
	return g.Cells[y*g.W : (y+1)*g.W]
}

// Col returns a copy of column x.
func (g *Grid) Col(x int) []byte {
	col := make([]byte, g.H)
	for y := range g.H {
		col[y] = g.Cells[y*g.W+x]
	}
	return col
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, Cells: bytes.Clone(g.Cells)}
}

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid) Transpose() *Grid {
	t := &Grid{W: g.H, H: g.W, Cells: make([]byte, len(g.Cells))}
	for y := range g.H {
		for x := range g.W {
			t.Cells[x*t.W+y] = g.Cells[y*g.W+x]
		}
	}
	return t
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.H {
		sb.Write(g.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows returns every row as a string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	for y := range g.H {
		rows[y] = string(g.Row(y))
	}
	return rows
}
