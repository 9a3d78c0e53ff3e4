package performance

import (
	"math/rand"
	"sync"
)

const (
	skipListMaxLevel = 16 // enough for 65536 samples
	skipListP        = 0.5
)

type skipListNode struct {
	value float64
	next  []*skipListNode
}

// SkipList keeps float64 samples sorted with O(log n) inserts and deletes.
type SkipList struct {
	header *skipListNode
	level  int
	size   int
	rng    *rand.Rand
	mu     sync.RWMutex
}

// NewSkipList returns an empty skip list. seed makes the level choices
// reproducible.
func NewSkipList(seed int64) *SkipList {
	return &SkipList{
		header: &skipListNode{next: make([]*skipListNode, skipListMaxLevel)},
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (sl *SkipList) randomLevel() int {
	level := 1
	for level < skipListMaxLevel && sl.rng.Float64() < skipListP {
		level++
	}
	return level
}

// path returns, for each level, the last node whose value is below value.
func (sl *SkipList) path(value float64) []*skipListNode {
	update := make([]*skipListNode, skipListMaxLevel)
	current := sl.header
	for i := sl.level - 1; i >= 0; i-- {
		for current.next[i] != nil && current.next[i].value < value {
			current = current.next[i]
		}
		update[i] = current
	}
	return update
}

// Insert adds value, keeping duplicates.
func (sl *SkipList) Insert(value float64) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	update := sl.path(value)
	newLevel := sl.randomLevel()
	if newLevel > sl.level {
		for i := sl.level; i < newLevel; i++ {
			update[i] = sl.header
		}
		sl.level = newLevel
	}

	node := &skipListNode{value: value, next: make([]*skipListNode, newLevel)}
	for i := range newLevel {
		node.next[i] = update[i].next[i]
		update[i].next[i] = node
	}
	sl.size++
}

// Delete removes one copy of value and reports whether it was present.
func (sl *SkipList) Delete(value float64) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	if sl.size == 0 {
		return false
	}
	update := sl.path(value)
	target := update[0].next[0]
	if target == nil || target.value != value {
		return false
	}
	for i := range target.next {
		if update[i].next[i] == target {
			update[i].next[i] = target.next[i]
		}
	}
	for sl.level > 1 && sl.header.next[sl.level-1] == nil {
		sl.level--
	}
	sl.size--
	return true
}

// Percentile returns the nearest-rank value for p in [0, 100].
func (sl *SkipList) Percentile(p float64) float64 {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	if sl.size == 0 {
		return 0
	}
	target := int(float64(sl.size-1) * p / 100.0)
	target = min(max(target, 0), sl.size-1)

	current := sl.header.next[0]
	for i := 0; i < target && current != nil; i++ {
		current = current.next[0]
	}
	if current == nil {
		return 0
	}
	return current.value
}

// Size returns the number of stored samples.
func (sl *SkipList) Size() int {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.size
}

// Values returns the samples in ascending order.
func (sl *SkipList) Values() []float64 {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	result := make([]float64, 0, sl.size)
	for n := sl.header.next[0]; n != nil; n = n.next[0] {
		result = append(result, n.value)
	}
	return result
}

// PercentileCalculator is a sliding window over the last maxSize samples.
// Once full, each new sample evicts the oldest one.
type PercentileCalculator struct {
	list     *SkipList
	maxSize  int
	window   []float64
	writePos int
	full     bool
}

// NewPercentileCalculator returns a calculator that keeps at most maxSize
// samples.
func NewPercentileCalculator(maxSize int) *PercentileCalculator {
	if maxSize < 1 {
		maxSize = 1
	}
	return &PercentileCalculator{
		list:    NewSkipList(int64(maxSize)),
		maxSize: maxSize,
		window:  make([]float64, maxSize),
	}
}

// Add records one sample.
func (pc *PercentileCalculator) Add(value float64) {
	if pc.full {
		pc.list.Delete(pc.window[pc.writePos])
	}
	pc.list.Insert(value)

	pc.window[pc.writePos] = value
	pc.writePos = (pc.writePos + 1) % pc.maxSize
	if !pc.full && pc.writePos == 0 {
		pc.full = true
	}
}

// Percentile returns the nearest-rank percentile of the window.
func (pc *PercentileCalculator) Percentile(p float64) float64 {
	return pc.list.Percentile(p)
}

// Size returns the number of samples in the window.
func (pc *PercentileCalculator) Size() int {
	return pc.list.Size()
}
