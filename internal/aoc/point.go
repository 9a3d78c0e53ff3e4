package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt is a 2D point or vector. Y grows downwards, matching grid rows.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Point is the int point used by most solvers.
type Point = Pt[int]

// P is shorthand for constructing an int Point.
func P(x, y int) Point { return Point{X: x, Y: y} }

func (p Pt[T]) Add(q Pt[T]) Pt[T]  { return Pt[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt[T]) Sub(q Pt[T]) Pt[T]  { return Pt[T]{p.X - q.X, p.Y - q.Y} }
func (p Pt[T]) Scale(k T) Pt[T]    { return Pt[T]{p.X * k, p.Y * k} }
func (p Pt[T]) Neg() Pt[T]         { return Pt[T]{-p.X, -p.Y} }
func (p Pt[T]) String() string     { return fmt.Sprintf("%v,%v", p.X, p.Y) }
func (p Pt[T]) Eq(q Pt[T]) bool    { return p == q }
func (p Pt[T]) Zero() bool         { return p.X == 0 && p.Y == 0 }
func (p Pt[T]) In(w, h T) bool     { return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h }
func (p Pt[T]) Sign() Pt[T]        { return Pt[T]{Sign(p.X), Sign(p.Y)} }
func (p Pt[T]) MDist(q Pt[T]) T    { return Abs(p.X-q.X) + Abs(p.Y-q.Y) }
func (p Pt[T]) ChebDist(q Pt[T]) T { return max(Abs(p.X-q.X), Abs(p.Y-q.Y)) }

// TurnRight rotates a direction vector 90 degrees clockwise on screen.
func (p Pt[T]) TurnRight() Pt[T] { return Pt[T]{-p.Y, p.X} }

// TurnLeft rotates a direction vector 90 degrees anticlockwise on screen.
func (p Pt[T]) TurnLeft() Pt[T] { return Pt[T]{p.Y, -p.X} }

// Toward moves p one step toward q on each axis.
func (p Pt[T]) Toward(q Pt[T]) Pt[T] { return p.Add(q.Sub(p).Sign()) }

// Neighbors4 returns the orthogonal neighbours of p.
func (p Pt[T]) Neighbors4() [4]Pt[T] {
	return [4]Pt[T]{{p.X, p.Y - 1}, {p.X + 1, p.Y}, {p.X, p.Y + 1}, {p.X - 1, p.Y}}
}

// Neighbors8 returns the orthogonal and diagonal neighbours of p.
func (p Pt[T]) Neighbors8() [8]Pt[T] {
	return [8]Pt[T]{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

// Unit directions on the int grid.
var (
	North = P(0, -1)
	East  = P(1, 0)
	South = P(0, 1)
	West  = P(-1, 0)

	// Dirs4 is clockwise from North.
	Dirs4 = [4]Point{North, East, South, West}
	// Dirs8 is clockwise from North.
	Dirs8 = [8]Point{North, P(1, -1), East, P(1, 1), South, P(-1, 1), West, P(-1, -1)}
)

// DirFromByte maps ^>v< and UDLR / NESW letters to a direction.
func DirFromByte(c byte) (Point, bool) {
	switch c {
	case '^', 'U', 'N':
		return North, true
	case '>', 'R', 'E':
		return East, true
	case 'v', 'D', 'S':
		return South, true
	case '<', 'L', 'W':
		return West, true
	}
	return Point{}, false
}
