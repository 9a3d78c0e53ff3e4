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
	registry.Register(puzzle.Solution{Year: 2023, Day: 25, Title: "Snowverload", Solve: solveDay25})
}

const wireCut = 3

type wiring struct {
	adj [][]int
}

func parseWiring(input string) (*wiring, error) {
	ids := map[string]int{}
	id := func(name string) int {
		if n, ok := ids[name]; ok {
			return n
		}
		ids[name] = len(ids)
		return ids[name]
	}
	var edges [][2]int
	for i, line := range aoc.NonEmptyLines(input) {
		from, to, err := aoc.Cut(line, ": ", i+1)
		if err != nil {
			return nil, err
		}
		for _, other := range strings.Fields(to) {
			edges = append(edges, [2]int{id(from), id(other)})
		}
	}
	if len(ids) < 2 {
		return nil, errors.ErrEmptyInput()
	}
	w := &wiring{adj: make([][]int, len(ids))}
	for _, e := range edges {
		w.adj[e[0]] = append(w.adj[e[0]], e[1])
		w.adj[e[1]] = append(w.adj[e[1]], e[0])
	}
	return w, nil
}

// cutSide pushes unit flow from s to t. When exactly limit paths exist it
// returns the size of the side of the minimum cut holding s.
func (w *wiring) cutSide(s, t, limit int) (int, bool) {
	flow := map[[2]int]int{}
	residual := func(u, v int) bool { return flow[[2]int{u, v}] < 1 }

	for paths := 0; ; paths++ {
		prev := make([]int, len(w.adj))
		for i := range prev {
			prev[i] = -1
		}
		prev[s] = s
		queue := []int{s}
		for len(queue) > 0 && prev[t] < 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range w.adj[u] {
				if prev[v] < 0 && residual(u, v) {
					prev[v] = u
					queue = append(queue, v)
				}
			}
		}

		if prev[t] < 0 {
			if paths != limit {
				return 0, false
			}
			side := 0
			for _, p := range prev {
				if p >= 0 {
					side++
				}
			}
			return side, true
		}
		if paths == limit {
			return 0, false
		}
		for v := t; v != s; v = prev[v] {
			u := prev[v]
			flow[[2]int{u, v}]++
			flow[[2]int{v, u}]--
		}
	}
}

func (w *wiring) splitProduct() (int, error) {
	n := len(w.adj)
	for t := 1; t < n; t++ {
		if side, ok := w.cutSide(0, t, wireCut); ok {
			return side * (n - side), nil
		}
	}
	return 0, errors.ErrNoSolution("no three-wire cut splits the components")
}

func solveDay25(_ context.Context, input string) (puzzle.Answer, error) {
	w, err := parseWiring(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product, err := w.splitProduct()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(product, nil), nil
}
