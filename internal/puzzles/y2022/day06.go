package y2022

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 6, Title: "Tuning Trouble", Solve: solveDay06})
}

// markerEnd returns the count of characters read once the last size
// characters are all different, or 0 if that never happens.
func markerEnd(signal string, size int) int {
	var counts [256]int
	distinct := 0
	for i := 0; i < len(signal); i++ {
		if counts[signal[i]] == 0 {
			distinct++
		}
		counts[signal[i]]++
		if i >= size {
			old := signal[i-size]
			counts[old]--
			if counts[old] == 0 {
				distinct--
			}
		}
		if distinct == size {
			return i + 1
		}
	}
	return 0
}

func solveDay06(_ context.Context, input string) (puzzle.Answer, error) {
	signal := strings.TrimSpace(input)
	if signal == "" {
		return puzzle.Answer{}, errors.ErrEmptyInput()
	}
	packet, message := markerEnd(signal, 4), markerEnd(signal, 14)
	if packet == 0 || message == 0 {
		return puzzle.Answer{}, errors.ErrNoSolution("signal has no marker")
	}
	return puzzle.NewAnswer(packet, message), nil
}
