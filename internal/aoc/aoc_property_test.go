package aoc

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMergeProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	genIntervals := gen.SliceOfN(8, gen.IntRange(0, 60)).Map(func(xs []int) []Interval {
		out := make([]Interval, 0, len(xs)/2)
		for i := 0; i+1 < len(xs); i += 2 {
			out = append(out, Span(xs[i], xs[i+1]))
		}
		return out
	})

	properties.Property("merge preserves membership", prop.ForAll(
		func(ivs []Interval) bool {
			merged := Merge(ivs)
			for x := -1; x <= 61; x++ {
				inOriginal, inMerged := false, false
				for _, iv := range ivs {
					inOriginal = inOriginal || iv.Contains(x)
				}
				for _, iv := range merged {
					inMerged = inMerged || iv.Contains(x)
				}
				if inOriginal != inMerged {
					return false
				}
			}
			return true
		},
		genIntervals,
	))

	properties.Property("merged intervals are sorted and disjoint", prop.ForAll(
		func(ivs []Interval) bool {
			merged := Merge(ivs)
			for i := 1; i < len(merged); i++ {
				if merged[i-1].Hi >= merged[i].Lo {
					return false
				}
			}
			return true
		},
		genIntervals,
	))

	properties.TestingRun(t)
}

func TestNumberTheoryProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("gcd times lcm equals product", prop.ForAll(
		func(a, b int) bool {
			return GCD(a, b)*LCM(a, b) == a*b
		},
		gen.IntRange(1, 10000),
		gen.IntRange(1, 10000),
	))

	properties.Property("four right turns return home", prop.ForAll(
		func(x, y int) bool {
			p := P(x, y)
			return p.TurnRight().TurnRight().TurnRight().TurnRight() == p &&
				p.TurnRight().TurnLeft() == p
		},
		gen.IntRange(-100, 100),
		gen.IntRange(-100, 100),
	))

	properties.TestingRun(t)
}
