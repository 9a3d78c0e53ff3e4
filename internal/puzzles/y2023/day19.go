package y2023

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 19, Title: "Aplenty", Solve: solveDay19})
}

const ratingCategories = "xmas"

type ratingRule struct {
	category int // index into "xmas"; -1 for the fallback rule
	less     bool
	value    int
	target   string
}

type workflows map[string][]ratingRule

type machinePart [4]int

func parseWorkflows(lines []string) (workflows, error) {
	flows := make(workflows, len(lines))
	for i, line := range lines {
		name, body, err := aoc.Cut(strings.TrimSuffix(line, "}"), "{", i+1)
		if err != nil {
			return nil, err
		}
		var rules []ratingRule
		for _, text := range strings.Split(body, ",") {
			cond, target, ok := strings.Cut(text, ":")
			if !ok {
				rules = append(rules, ratingRule{category: -1, target: text})
				continue
			}
			if len(cond) < 3 || (cond[1] != '<' && cond[1] != '>') {
				return nil, errors.ErrBadLine(i+1, line, nil).WithContext("rule", text)
			}
			category := strings.IndexByte(ratingCategories, cond[0])
			if category < 0 {
				return nil, errors.ErrBadLine(i+1, line, nil).WithContext("category", string(cond[0]))
			}
			value, err := aoc.Atoi(cond[2:])
			if err != nil {
				return nil, errors.AtLine(err, i+1)
			}
			rules = append(rules, ratingRule{category: category, less: cond[1] == '<', value: value, target: target})
		}
		flows[name] = rules
	}
	if _, ok := flows["in"]; !ok {
		return nil, errors.ErrMissingMarker("in workflow")
	}
	return flows, nil
}

func (w workflows) accepts(p machinePart) (bool, error) {
	name := "in"
	for steps := 0; steps <= len(w); steps++ {
		switch name {
		case "A":
			return true, nil
		case "R":
			return false, nil
		}
		rules, ok := w[name]
		if !ok {
			return false, errors.ErrMissingMarker("workflow " + name)
		}
		for _, r := range rules {
			if r.category < 0 ||
				(r.less && p[r.category] < r.value) ||
				(!r.less && p[r.category] > r.value) {
				name = r.target
				break
			}
		}
	}
	return false, errors.ErrNoSolution("workflows loop")
}

// ratingBox is an inclusive range of ratings per category.
type ratingBox [4]aoc.Interval

func (b ratingBox) size() int {
	n := 1
	for _, iv := range b {
		n *= iv.Len()
	}
	return n
}

// acceptedCombinations counts the parts inside box that name accepts, by
// splitting the box at every rule.
func (w workflows) acceptedCombinations(name string, box ratingBox, depth int) int {
	switch {
	case name == "A":
		return box.size()
	case name == "R" || depth > len(w):
		return 0
	}
	total := 0
	for _, r := range w[name] {
		if r.category < 0 {
			return total + w.acceptedCombinations(r.target, box, depth+1)
		}
		iv := box[r.category]
		var pass, fail aoc.Interval
		if r.less {
			pass = iv.Intersect(aoc.Interval{Lo: iv.Lo, Hi: r.value - 1})
			fail = iv.Intersect(aoc.Interval{Lo: r.value, Hi: iv.Hi})
		} else {
			pass = iv.Intersect(aoc.Interval{Lo: r.value + 1, Hi: iv.Hi})
			fail = iv.Intersect(aoc.Interval{Lo: iv.Lo, Hi: r.value})
		}
		if !pass.Empty() {
			taken := box
			taken[r.category] = pass
			total += w.acceptedCombinations(r.target, taken, depth+1)
		}
		if fail.Empty() {
			return total
		}
		box[r.category] = fail
	}
	return total
}

func parsePart(line string) (machinePart, error) {
	var p machinePart
	fields := strings.Split(strings.Trim(line, "{}"), ",")
	if len(fields) != 4 {
		return p, errors.NewParseError(errors.ErrCodeBadLine, "part needs four ratings")
	}
	for i, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key != ratingCategories[i:i+1] {
			return p, errors.NewParseError(errors.ErrCodeBadLine, "ratings must be x, m, a, s").
				WithContext("field", f)
		}
		n, err := aoc.Atoi(value)
		if err != nil {
			return p, err
		}
		p[i] = n
	}
	return p, nil
}

func solveDay19(_ context.Context, input string) (puzzle.Answer, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return puzzle.Answer{}, errors.ErrMissingMarker("workflow and part sections")
	}
	flows, err := parseWorkflows(blocks[0])
	if err != nil {
		return puzzle.Answer{}, err
	}

	accepted := 0
	for i, line := range blocks[1] {
		p, err := parsePart(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, len(blocks[0])+2+i)
		}
		ok, err := flows.accepts(p)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if ok {
			accepted += p[0] + p[1] + p[2] + p[3]
		}
	}

	full := aoc.Interval{Lo: 1, Hi: 4000}
	combos := flows.acceptedCombinations("in", ratingBox{full, full, full, full}, 0)
	return puzzle.NewAnswer(accepted, combos), nil
}
