package y2023

import (
	"context"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 23, Title: "A Long Walk", Solve: solveDay23})
}

type trailEdge struct {
	to, length int
}

// trailGraph contracts the corridors between junctions into weighted edges.
// Node 0 is the start and node 1 the end.
type trailGraph struct {
	edges [][]trailEdge
}

func trailOpen(g *aoc.Grid, p aoc.Point) bool {
	c, ok := g.Get(p)
	return ok && c != '#'
}

// trailStep reports whether a hiker may move from p in dir. With slippery
// slopes a slope tile can only be left downhill.
func trailStep(g *aoc.Grid, p, dir aoc.Point, slippery bool) bool {
	if !trailOpen(g, p.Add(dir)) {
		return false
	}
	if !slippery {
		return true
	}
	if slope, ok := aoc.DirFromByte(g.At(p)); ok {
		return slope == dir
	}
	return true
}

func buildTrailGraph(g *aoc.Grid, slippery bool) (*trailGraph, error) {
	start := aoc.P(0, 0)
	end := aoc.P(0, g.H-1)
	var foundStart, foundEnd bool
	for x := range g.W {
		if g.At(aoc.P(x, 0)) == '.' && !foundStart {
			start, foundStart = aoc.P(x, 0), true
		}
		if g.At(aoc.P(x, g.H-1)) == '.' && !foundEnd {
			end, foundEnd = aoc.P(x, g.H-1), true
		}
	}
	if !foundStart || !foundEnd {
		return nil, errors.ErrMissingMarker("trail entrance or exit")
	}

	ids := map[aoc.Point]int{start: 0, end: 1}
	g.Points(func(p aoc.Point, c byte) {
		if c == '#' {
			return
		}
		exits := 0
		for _, d := range aoc.Dirs4 {
			if trailOpen(g, p.Add(d)) {
				exits++
			}
		}
		if _, known := ids[p]; exits >= 3 && !known {
			ids[p] = len(ids)
		}
	})

	graph := &trailGraph{edges: make([][]trailEdge, len(ids))}
	for from, id := range ids {
		for _, d := range aoc.Dirs4 {
			if !trailStep(g, from, d, slippery) {
				continue
			}
			prev, cur, length := from, from.Add(d), 1
			for ok := true; ok; {
				if to, junction := ids[cur]; junction {
					graph.edges[id] = append(graph.edges[id], trailEdge{to: to, length: length})
					break
				}
				ok = false
				for _, nd := range aoc.Dirs4 {
					next := cur.Add(nd)
					if next != prev && trailStep(g, cur, nd, slippery) {
						prev, cur, ok = cur, next, true
						length++
						break
					}
				}
			}
		}
	}
	return graph, nil
}

// longest returns the longest simple path from start to end, or -1.
func (t *trailGraph) longest() int {
	visited := make([]bool, len(t.edges))
	var walk func(node int) int
	walk = func(node int) int {
		if node == 1 {
			return 0
		}
		visited[node] = true
		best := -1
		for _, e := range t.edges[node] {
			if visited[e.to] {
				continue
			}
			if rest := walk(e.to); rest >= 0 {
				best = max(best, rest+e.length)
			}
		}
		visited[node] = false
		return best
	}
	return walk(0)
}

func solveDay23(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var answers [2]int
	for i, slippery := range []bool{true, false} {
		graph, err := buildTrailGraph(g, slippery)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if answers[i] = graph.longest(); answers[i] < 0 {
			return puzzle.Answer{}, errors.ErrNoSolution("no hike reaches the exit")
		}
	}
	return puzzle.NewAnswer(answers[0], answers[1]), nil
}
