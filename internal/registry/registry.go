// Package registry keeps the set of puzzle solutions known to the binary.
// Year packages add themselves to Default from init functions.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
)

// Registry manages all registered solutions
type Registry struct {
	solutions map[puzzle.Key]puzzle.Solution
	mutex     sync.RWMutex
	watchers  []chan Event
}

// Event represents a change in the registry
type Event struct {
	Type      EventType
	Key       puzzle.Key
	Timestamp time.Time
}

// EventType represents the type of registry event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeRemoved
)

// Default is the process-wide registry populated by the year packages.
var Default = New()

// New creates an empty registry
func New() *Registry {
	return &Registry{
		solutions: make(map[puzzle.Key]puzzle.Solution),
		watchers:  make([]chan Event, 0),
	}
}

// Register adds a solution. Registering the same year and day twice is an error.
func (r *Registry) Register(solution puzzle.Solution) error {
	if solution.Solve == nil {
		return errors.NewInternalError(errors.ErrCodeInternalError,
			fmt.Sprintf("solution %s has no solve function", solution.Key()), nil)
	}
	if solution.Day < 1 || solution.Day > 25 {
		return errors.NewInputError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("day %d out of range 1-25", solution.Day))
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := solution.Key()
	if _, exists := r.solutions[key]; exists {
		return errors.NewInternalError(errors.ErrCodeDuplicatePuzzle,
			"duplicate registration for "+key.String(), nil)
	}

	r.solutions[key] = solution
	r.notify(Event{Type: EventTypeAdded, Key: key, Timestamp: time.Now()})

	return nil
}

// MustRegister is Register for init functions; it panics on error.
func (r *Registry) MustRegister(solution puzzle.Solution) {
	if err := r.Register(solution); err != nil {
		panic(err)
	}
}

// Get retrieves a solution by year and day
func (r *Registry) Get(year, day int) (puzzle.Solution, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	solution, exists := r.solutions[puzzle.Key{Year: year, Day: day}]
	if !exists {
		return puzzle.Solution{}, errors.ErrPuzzleNotFound(year, day)
	}
	return solution, nil
}

// Remove deletes a solution; unknown keys are ignored.
func (r *Registry) Remove(year, day int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := puzzle.Key{Year: year, Day: day}
	if _, exists := r.solutions[key]; !exists {
		return
	}
	delete(r.solutions, key)
	r.notify(Event{Type: EventTypeRemoved, Key: key, Timestamp: time.Now()})
}

// List returns every solution ordered by year then day.
func (r *Registry) List() []puzzle.Solution {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]puzzle.Solution, 0, len(r.solutions))
	for _, solution := range r.solutions {
		result = append(result, solution)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key().Less(result[j].Key())
	})
	return result
}

// ListYear returns the solutions of one year ordered by day.
func (r *Registry) ListYear(year int) []puzzle.Solution {
	var result []puzzle.Solution
	for _, solution := range r.List() {
		if solution.Year == year {
			result = append(result, solution)
		}
	}
	return result
}

// Years returns the distinct years with at least one solution.
func (r *Registry) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, solution := range r.List() {
		if !seen[solution.Year] {
			seen[solution.Year] = true
			years = append(years, solution.Year)
		}
	}
	return years
}

// Days returns the registered days of year in order.
func (r *Registry) Days(year int) []int {
	var days []int
	for _, solution := range r.ListYear(year) {
		days = append(days, solution.Day)
	}
	return days
}

// Count returns the number of registered solutions
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.solutions)
}

// Watch returns a channel that receives registry events
func (r *Registry) Watch() <-chan Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan Event, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *Registry) UnWatch(ch <-chan Event) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// notify must be called with the write lock held.
func (r *Registry) notify(event Event) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}

// Register adds a solution to Default.
func Register(solution puzzle.Solution) {
	Default.MustRegister(solution)
}
