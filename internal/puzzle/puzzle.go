// Package puzzle defines the contract every daily solver implements.
package puzzle

import (
	"context"
	"fmt"
)

// Unsolved is reported for a part that has no implementation.
const Unsolved = "-"

// Answer holds the two printable results of a puzzle.
type Answer struct {
	Part1 string `json:"part1" yaml:"part1"`
	Part2 string `json:"part2" yaml:"part2"`
}

// NewAnswer formats any two values as an Answer. Nil parts become Unsolved.
func NewAnswer(part1, part2 any) Answer {
	return Answer{Part1: format(part1), Part2: format(part2)}
}

func format(v any) string {
	switch v := v.(type) {
	case nil:
		return Unsolved
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// SolveFunc computes both parts from the raw input text.
type SolveFunc func(ctx context.Context, input string) (Answer, error)

// Key identifies one puzzle day.
type Key struct {
	Year int `json:"year" yaml:"year"`
	Day  int `json:"day" yaml:"day"`
}

// String renders the key as "2023/07".
func (k Key) String() string {
	return fmt.Sprintf("%d/%02d", k.Year, k.Day)
}

// Less orders keys by year, then day.
func (k Key) Less(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Day < other.Day
}

// Solution is a registered solver and its metadata.
type Solution struct {
	Year  int
	Day   int
	Title string
	Solve SolveFunc
}

// Key returns the solution's registry key.
func (s Solution) Key() Key {
	return Key{Year: s.Year, Day: s.Day}
}
