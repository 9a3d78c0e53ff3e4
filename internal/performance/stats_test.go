package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Stats{}, Summarize(nil))
	})

	t.Run("population stddev", func(t *testing.T) {
		samples := []time.Duration{2, 4, 4, 4, 5, 5, 7, 9}
		stats := Summarize(samples)

		assert.Equal(t, 8, stats.Samples)
		assert.Equal(t, time.Duration(2), stats.Min)
		assert.Equal(t, time.Duration(9), stats.Max)
		assert.Equal(t, time.Duration(5), stats.Mean)
		assert.Equal(t, time.Duration(2), stats.StdDev)
		assert.Equal(t, time.Duration(4), stats.P50)
		assert.Equal(t, time.Duration(7), stats.P90)
		assert.Equal(t, "Elapsed time - min: 2ns, avg: 5ns, stddev: 2ns", stats.String())
	})

	t.Run("single sample", func(t *testing.T) {
		stats := Summarize([]time.Duration{time.Millisecond})
		assert.Equal(t, time.Millisecond, stats.Min)
		assert.Equal(t, time.Millisecond, stats.P99)
		assert.Zero(t, stats.StdDev)
	})
}

func TestTimer(t *testing.T) {
	calls := 0
	stats, err := Timer(25, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 25, calls)
	assert.Equal(t, 25, stats.Samples)
	assert.LessOrEqual(t, stats.Min, stats.Mean)
	assert.LessOrEqual(t, stats.Mean, stats.Max)

	boom := errors.New("boom")
	calls = 0
	stats, err = Timer(10, func() error {
		calls++
		if calls == 4 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, stats.Samples)
}

func TestMeanInterval(t *testing.T) {
	samples := []time.Duration{2, 4, 4, 4, 5, 5, 7, 9}

	ci := MeanInterval(samples, ConfidenceLevel)
	assert.Equal(t, time.Duration(3), ci.Lower)
	assert.Equal(t, time.Duration(7), ci.Upper)
	assert.InDelta(t, 0.95, ci.Level, 1e-12)
	assert.Equal(t, ci, Summarize(samples).CI)

	wider := MeanInterval(samples, 0.99)
	assert.LessOrEqual(t, wider.Lower, ci.Lower)
	assert.GreaterOrEqual(t, wider.Upper, ci.Upper)

	assert.Zero(t, MeanInterval(samples[:1], ConfidenceLevel))
	assert.Zero(t, MeanInterval(samples, 1))
}
