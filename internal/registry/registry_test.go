package registry

import (
	"context"
	"testing"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(year, day int) puzzle.Solution {
	return puzzle.Solution{
		Year:  year,
		Day:   day,
		Title: "stub",
		Solve: func(context.Context, string) (puzzle.Answer, error) {
			return puzzle.NewAnswer(year, day), nil
		},
	}
}

func TestNew(t *testing.T) {
	registry := New()

	assert.NotNil(t, registry.solutions)
	assert.Equal(t, 0, registry.Count())
	assert.Empty(t, registry.List())
}

func TestRegisterAndGet(t *testing.T) {
	registry := New()
	require.NoError(t, registry.Register(stub(2023, 7)))

	solution, err := registry.Get(2023, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, solution.Day)

	answer, err := solution.Solve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2023", answer.Part1)

	_, err = registry.Get(2023, 8)
	assert.True(t, errors.IsNotFound(err))
}

func TestRegisterRejects(t *testing.T) {
	registry := New()
	require.NoError(t, registry.Register(stub(2022, 1)))

	t.Run("duplicate", func(t *testing.T) {
		err := registry.Register(stub(2022, 1))
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeDuplicatePuzzle))
	})

	t.Run("missing solve func", func(t *testing.T) {
		assert.Error(t, registry.Register(puzzle.Solution{Year: 2022, Day: 2}))
	})

	t.Run("day out of range", func(t *testing.T) {
		assert.Error(t, registry.Register(stub(2022, 26)))
		assert.Error(t, registry.Register(stub(2022, 0)))
	})

	t.Run("must register panics", func(t *testing.T) {
		assert.Panics(t, func() { registry.MustRegister(stub(2022, 1)) })
	})
}

func TestListOrdering(t *testing.T) {
	registry := New()
	for _, key := range []puzzle.Key{
		{Year: 2024, Day: 3}, {Year: 2022, Day: 10}, {Year: 2024, Day: 1}, {Year: 2022, Day: 2},
	} {
		require.NoError(t, registry.Register(stub(key.Year, key.Day)))
	}

	var keys []string
	for _, solution := range registry.List() {
		keys = append(keys, solution.Key().String())
	}
	assert.Equal(t, []string{"2022/02", "2022/10", "2024/01", "2024/03"}, keys)
	assert.Equal(t, []int{2022, 2024}, registry.Years())
	assert.Len(t, registry.ListYear(2024), 2)
	assert.Equal(t, []int{1, 3}, registry.Days(2024))
	assert.Empty(t, registry.ListYear(2025))
}

func TestWatchEvents(t *testing.T) {
	registry := New()
	events := registry.Watch()

	require.NoError(t, registry.Register(stub(2025, 1)))
	registry.Remove(2025, 1)
	registry.Remove(2025, 1)

	added := <-events
	removed := <-events
	assert.Equal(t, EventTypeAdded, added.Type)
	assert.Equal(t, puzzle.Key{Year: 2025, Day: 1}, added.Key)
	assert.Equal(t, EventTypeRemoved, removed.Type)
	assert.Len(t, events, 0)

	registry.UnWatch(events)
	_, open := <-events
	assert.False(t, open)
}
