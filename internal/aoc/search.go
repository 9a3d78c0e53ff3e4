package aoc

import (
	"container/heap"
)

// BFS walks outward from start and returns the step count to every reachable
// state. next lists the neighbours of a state.
func BFS[S comparable](start S, next func(S) []S) map[S]int {
	dist := map[S]int{start: 0}
	queue := []S{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range next(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// ShortestPath runs BFS until goal reports true and returns that distance.
func ShortestPath[S comparable](start S, next func(S) []S, goal func(S) bool) (int, bool) {
	if goal(start) {
		return 0, true
	}
	dist := map[S]int{start: 0}
	queue := []S{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range next(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			d := dist[cur] + 1
			if goal(n) {
				return d, true
			}
			dist[n] = d
			queue = append(queue, n)
		}
	}
	return 0, false
}

// Edge is a weighted transition to To.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Dijkstra computes least-cost distances from every start state. Costs must
// be non-negative. The search stops early once stop reports true for a
// settled state; pass nil to explore everything.
func Dijkstra[S comparable](starts []S, next func(S) []Edge[S], stop func(S) bool) map[S]int {
	dist := make(map[S]int, len(starts))
	pq := &priorityQueue[S]{}
	for _, s := range starts {
		dist[s] = 0
		heap.Push(pq, item[S]{state: s})
	}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item[S])
		if cur.cost > dist[cur.state] {
			continue
		}
		if stop != nil && stop(cur.state) {
			break
		}
		for _, e := range next(cur.state) {
			cost := cur.cost + e.Cost
			if old, seen := dist[e.To]; seen && old <= cost {
				continue
			}
			dist[e.To] = cost
			heap.Push(pq, item[S]{state: e.To, cost: cost})
		}
	}
	return dist
}

type item[S any] struct {
	state S
	cost  int
}

type priorityQueue[S any] []item[S]

func (q priorityQueue[S]) Len() int           { return len(q) }
func (q priorityQueue[S]) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q priorityQueue[S]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue[S]) Push(x any)        { *q = append(*q, x.(item[S])) }
func (q *priorityQueue[S]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// FloodFill returns every grid point reachable from start through cells
// accepted by pass, using orthogonal steps.
func FloodFill(g *Grid, start Point, pass func(from, to Point) bool) map[Point]bool {
	seen := map[Point]bool{start: true}
	stack := []Point{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range cur.Neighbors4() {
			if seen[n] || !g.In(n) || !pass(cur, n) {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return seen
}

// Shoelace returns twice the signed area of the closed polygon through pts.
func Shoelace(pts []Point) int {
	area := 0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}

// CycleFind runs step from start, detecting the first repeated state by key.
// It returns the index where the cycle begins and its length, along with the
// states seen so far in order.
func CycleFind[S any, K comparable](start S, step func(S) S, key func(S) K, limit int) (begin, length int, history []S) {
	seen := map[K]int{}
	cur := start
	for i := 0; i < limit; i++ {
		k := key(cur)
		if prev, ok := seen[k]; ok {
			return prev, i - prev, history
		}
		seen[k] = i
		history = append(history, cur)
		cur = step(cur)
	}
	return -1, 0, history
}
