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
	registry.Register(puzzle.Solution{Year: 2023, Day: 15, Title: "Lens Library", Solve: solveDay15})
}

func holidayHash(s string) int {
	h := 0
	for i := range len(s) {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int
}

// focusingPower runs the HASHMAP steps and scores the final box contents.
func focusingPower(steps []string) (int, error) {
	var boxes [256][]lens
	for _, step := range steps {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			box := &boxes[holidayHash(label)]
			*box = slices.DeleteFunc(*box, func(l lens) bool { return l.label == label })
			continue
		}
		label, focalText, ok := strings.Cut(step, "=")
		if !ok {
			return 0, errors.NewParseError(errors.ErrCodeBadLine, "step needs '=' or '-'").WithContext("step", step)
		}
		focal, err := aoc.Atoi(focalText)
		if err != nil {
			return 0, err
		}
		box := &boxes[holidayHash(label)]
		if i := slices.IndexFunc(*box, func(l lens) bool { return l.label == label }); i >= 0 {
			(*box)[i].focal = focal
		} else {
			*box = append(*box, lens{label: label, focal: focal})
		}
	}

	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}
	return power, nil
}

func solveDay15(_ context.Context, input string) (puzzle.Answer, error) {
	text := strings.Join(strings.Fields(input), "")
	if text == "" {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	steps := strings.Split(text, ",")
	sum := 0
	for _, s := range steps {
		sum += holidayHash(s)
	}
	power, err := focusingPower(steps)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(sum, power), nil
}
