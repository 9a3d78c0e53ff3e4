package y2023

import (
	"context"
	"slices"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 5, Title: "If You Give A Seed A Fertilizer", Solve: solveDay05})
}

// almanacRange maps src to src + shift.
type almanacRange struct {
	src   aoc.Interval
	shift int
}

type almanacMap []almanacRange

func parseAlmanac(input string) ([]int, []almanacMap, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return nil, nil, errors.ErrEmptyInput()
	}
	head, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok {
		return nil, nil, errors.ErrMissingMarker("seeds: header")
	}
	seeds, err := aoc.Fields(head)
	if err != nil {
		return nil, nil, errors.AtLine(err, 1)
	}

	maps := make([]almanacMap, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		m := make(almanacMap, 0, len(block)-1)
		for _, line := range block[1:] {
			nums, err := aoc.Fields(line)
			if err != nil {
				return nil, nil, err
			}
			if len(nums) != 3 {
				return nil, nil, errors.NewParseError(errors.ErrCodeBadLine, "expected dst src len").
					WithContext("line", line)
			}
			dst, src, n := nums[0], nums[1], nums[2]
			m = append(m, almanacRange{src: aoc.Interval{Lo: src, Hi: src + n - 1}, shift: dst - src})
		}
		slices.SortFunc(m, func(a, b almanacRange) int { return a.src.Lo - b.src.Lo })
		maps = append(maps, m)
	}
	return seeds, maps, nil
}

func (m almanacMap) lookup(x int) int {
	for _, r := range m {
		if r.src.Contains(x) {
			return x + r.shift
		}
	}
	return x
}

// apply maps every interval through m, splitting where the source ranges cut
// it. Values not covered by any range map to themselves.
func (m almanacMap) apply(in []aoc.Interval) []aoc.Interval {
	var out []aoc.Interval
	for _, iv := range in {
		cur := iv.Lo
		for _, r := range m {
			if cur > iv.Hi {
				break
			}
			part := aoc.Interval{Lo: cur, Hi: iv.Hi}.Intersect(r.src)
			if part.Empty() {
				continue
			}
			if part.Lo > cur {
				out = append(out, aoc.Interval{Lo: cur, Hi: part.Lo - 1})
			}
			out = append(out, aoc.Interval{Lo: part.Lo + r.shift, Hi: part.Hi + r.shift})
			cur = part.Hi + 1
		}
		if cur <= iv.Hi {
			out = append(out, aoc.Interval{Lo: cur, Hi: iv.Hi})
		}
	}
	return aoc.Merge(out)
}

func solveDay05(_ context.Context, input string) (puzzle.Answer, error) {
	seeds, maps, err := parseAlmanac(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(seeds) == 0 || len(seeds)%2 != 0 {
		return puzzle.Answer{}, errors.NewInputError(errors.ErrCodeBadLine, "seed list must hold start/length pairs").
			WithContext("seeds", len(seeds))
	}

	lowest := -1
	for _, s := range seeds {
		for _, m := range maps {
			s = m.lookup(s)
		}
		if lowest < 0 || s < lowest {
			lowest = s
		}
	}

	ranges := make([]aoc.Interval, 0, len(seeds)/2)
	for i := 0; i < len(seeds); i += 2 {
		ranges = append(ranges, aoc.Interval{Lo: seeds[i], Hi: seeds[i] + seeds[i+1] - 1})
	}
	ranges = aoc.Merge(ranges)
	for _, m := range maps {
		ranges = m.apply(ranges)
	}
	if len(ranges) == 0 {
		return puzzle.Answer{}, errors.ErrNoSolution("no seed range survived the maps")
	}
	return puzzle.NewAnswer(lowest, ranges[0].Lo), nil
}
