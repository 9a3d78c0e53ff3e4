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
	registry.Register(puzzle.Solution{Year: 2023, Day: 20, Title: "Pulse Propagation", Solve: solveDay20})
}

const broadcasterName = "broadcaster"

type pulseModule struct {
	kind    byte // '%' flip-flop, '&' conjunction, 'b' broadcaster
	outputs []string
	on      bool
	memory  map[string]bool // last pulse per input, true for high
}

type pulse struct {
	from, to string
	high     bool
}

type pulseNetwork struct {
	modules map[string]*pulseModule
}

func parsePulseNetwork(input string) (*pulseNetwork, error) {
	net := &pulseNetwork{modules: map[string]*pulseModule{}}
	for i, line := range aoc.NonEmptyLines(input) {
		name, outs, err := aoc.Cut(line, " -> ", i+1)
		if err != nil {
			return nil, err
		}
		m := &pulseModule{kind: 'b', memory: map[string]bool{}}
		switch {
		case name == broadcasterName:
		case strings.HasPrefix(name, "%"), strings.HasPrefix(name, "&"):
			m.kind, name = name[0], name[1:]
		default:
			return nil, errors.ErrBadLine(i+1, line, nil).WithContext("reason", "unknown module type")
		}
		for _, out := range strings.Split(outs, ",") {
			m.outputs = append(m.outputs, strings.TrimSpace(out))
		}
		net.modules[name] = m
	}
	if _, ok := net.modules[broadcasterName]; !ok {
		return nil, errors.ErrMissingMarker(broadcasterName + " module")
	}
	for name, m := range net.modules {
		for _, out := range m.outputs {
			if target, ok := net.modules[out]; ok && target.kind == '&' {
				target.memory[name] = false
			}
		}
	}
	return net, nil
}

// press sends one button pulse through the network, calling observe for
// every pulse delivered.
func (n *pulseNetwork) press(observe func(pulse)) {
	queue := []pulse{{from: "button", to: broadcasterName}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)

		m, ok := n.modules[p.to]
		if !ok {
			continue
		}
		var high bool
		switch m.kind {
		case 'b':
			high = p.high
		case '%':
			if p.high {
				continue
			}
			m.on = !m.on
			high = m.on
		case '&':
			m.memory[p.from] = p.high
			high = false
			for _, v := range m.memory {
				if !v {
					high = true
					break
				}
			}
		}
		for _, out := range m.outputs {
			queue = append(queue, pulse{from: p.to, to: out, high: high})
		}
	}
}

func (n *pulseNetwork) pulseProduct(presses int) int {
	low, high := 0, 0
	for range presses {
		n.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return low * high
}

// rxPresses finds the first press that delivers a low pulse to rx. rx must be
// fed by a single conjunction whose inputs each fire high on a fixed period.
func (n *pulseNetwork) rxPresses(limit int) (int, bool, error) {
	var feeder string
	for name, m := range n.modules {
		if slices.Contains(m.outputs, "rx") {
			if feeder != "" || m.kind != '&' {
				return 0, true, errors.ErrNoSolution("rx must be fed by exactly one conjunction")
			}
			feeder = name
		}
	}
	if feeder == "" {
		return 0, false, nil
	}

	periods := map[string]int{}
	for presses := 1; presses <= limit; presses++ {
		n.press(func(p pulse) {
			if p.to == feeder && p.high {
				if _, seen := periods[p.from]; !seen {
					periods[p.from] = presses
				}
			}
		})
		if len(periods) == len(n.modules[feeder].memory) {
			values := make([]int, 0, len(periods))
			for _, v := range periods {
				values = append(values, v)
			}
			return aoc.LCMAll(values...), true, nil
		}
	}
	return 0, true, errors.ErrNoSolution("feeder inputs never all fired")
}

func solveDay20(_ context.Context, input string) (puzzle.Answer, error) {
	net, err := parsePulseNetwork(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part1 := net.pulseProduct(1000)

	// Reparse so the rx search starts from the initial state.
	net, err = parsePulseNetwork(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	presses, ok, err := net.rxPresses(100_000)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !ok {
		return puzzle.NewAnswer(part1, nil), nil
	}
	return puzzle.NewAnswer(part1, presses), nil
}
