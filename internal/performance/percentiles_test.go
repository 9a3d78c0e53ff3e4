package performance

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipList_BasicOperations(t *testing.T) {
	sl := NewSkipList(1)
	assert.Equal(t, 0, sl.Size())
	assert.False(t, sl.Delete(1), "delete on empty list")

	for _, v := range []float64{5, 2, 8, 1, 9, 3, 5} {
		sl.Insert(v)
	}
	assert.Equal(t, 7, sl.Size())
	assert.Equal(t, []float64{1, 2, 3, 5, 5, 8, 9}, sl.Values())

	require.True(t, sl.Delete(5))
	assert.Equal(t, []float64{1, 2, 3, 5, 8, 9}, sl.Values())
	assert.False(t, sl.Delete(100))
}

func TestSkipList_Percentile(t *testing.T) {
	sl := NewSkipList(7)
	assert.Zero(t, sl.Percentile(50))
	for v := 1; v <= 10; v++ {
		sl.Insert(float64(v))
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0, 1},
		{50, 5},
		{90, 9},
		{100, 10},
		{150, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sl.Percentile(tt.percentile), "p%v", tt.percentile)
	}
}

func TestPercentileCalculator_Window(t *testing.T) {
	pc := NewPercentileCalculator(3)
	for _, v := range []float64{10, 20, 30, 40} {
		pc.Add(v)
	}
	// 10 was evicted
	assert.Equal(t, 3, pc.Size())
	assert.Equal(t, 20.0, pc.Percentile(0))
	assert.Equal(t, 40.0, pc.Percentile(100))
}

func TestSkipList_MatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sl := NewSkipList(3)
	var want []float64
	for range 500 {
		v := float64(rng.Intn(100))
		sl.Insert(v)
		want = append(want, v)
	}
	for i := 0; i < 200; i++ {
		require.True(t, sl.Delete(want[i]))
	}
	want = want[200:]
	sort.Float64s(want)
	assert.Equal(t, want, sl.Values())
}
