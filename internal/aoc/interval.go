package aoc

import (
	"cmp"
	"slices"
)

// Interval is the inclusive integer range [Lo, Hi]. It is empty when Lo > Hi.
type Interval struct {
	Lo, Hi int
}

// Span builds an Interval from its bounds in either order.
func Span(a, b int) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Lo: a, Hi: b}
}

// Empty reports whether the interval holds no values.
func (iv Interval) Empty() bool { return iv.Lo > iv.Hi }

// Len returns the number of values in the interval.
func (iv Interval) Len() int {
	if iv.Empty() {
		return 0
	}
	return iv.Hi - iv.Lo + 1
}

// Contains reports whether x lies in the interval.
func (iv Interval) Contains(x int) bool { return iv.Lo <= x && x <= iv.Hi }

// Covers reports whether other lies entirely inside iv.
func (iv Interval) Covers(other Interval) bool {
	return iv.Lo <= other.Lo && other.Hi <= iv.Hi
}

// Overlaps reports whether the intervals share at least one value.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Lo <= other.Hi && other.Lo <= iv.Hi
}

// Intersect returns the common part, which may be empty.
func (iv Interval) Intersect(other Interval) Interval {
	return Interval{Lo: max(iv.Lo, other.Lo), Hi: min(iv.Hi, other.Hi)}
}

// Union joins two intervals that share at least one value. ok is false
// otherwise, including for intervals that only touch end to end.
func (iv Interval) Union(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	return Interval{Lo: min(iv.Lo, other.Lo), Hi: max(iv.Hi, other.Hi)}, true
}

// Merge sorts the intervals and joins any that overlap. Empty
// intervals are dropped. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Or(cmp.Compare(a.Lo, b.Lo), cmp.Compare(a.Hi, b.Hi))
	})

	var merged []Interval
	for _, iv := range sorted {
		if n := len(merged); n > 0 {
			if joined, ok := merged[n-1].Union(iv); ok {
				merged[n-1] = joined
				continue
			}
		}
		merged = append(merged, iv)
	}
	return merged
}

// TotalLen sums the lengths of the merged intervals.
func TotalLen(intervals []Interval) int {
	total := 0
	for _, iv := range Merge(intervals) {
		total += iv.Len()
	}
	return total
}
