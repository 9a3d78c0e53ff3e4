// Package performance measures how long a solver takes. Timer runs a closure
// many times and Summarize reduces the samples to min, mean, population
// standard deviation, a few percentiles and a confidence interval of the mean.
package performance

import (
	"fmt"
	"math"
	"time"
)

// DefaultIterations is the sample count used when none is configured.
const DefaultIterations = 10000

// Stats summarises a set of duration samples.
type Stats struct {
	Samples int           `json:"samples" yaml:"samples"`
	Min     time.Duration `json:"min_ns" yaml:"min_ns"`
	Max     time.Duration `json:"max_ns" yaml:"max_ns"`
	Mean    time.Duration `json:"mean_ns" yaml:"mean_ns"`
	StdDev  time.Duration `json:"stddev_ns" yaml:"stddev_ns"`
	P50     time.Duration `json:"p50_ns" yaml:"p50_ns"`
	P90     time.Duration `json:"p90_ns" yaml:"p90_ns"`
	P99     time.Duration `json:"p99_ns" yaml:"p99_ns"`

	CI ConfidenceInterval `json:"ci" yaml:"ci"`
}

// String renders the classic one-line report.
func (s Stats) String() string {
	return fmt.Sprintf("Elapsed time - min: %dns, avg: %dns, stddev: %dns",
		s.Min.Nanoseconds(), s.Mean.Nanoseconds(), s.StdDev.Nanoseconds())
}

// Summarize computes Stats over samples. The zero Stats is returned for no
// samples.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	pc := NewPercentileCalculator(len(samples))
	var sum, sumsq float64
	lo, hi := samples[0], samples[0]
	for _, d := range samples {
		ns := float64(d.Nanoseconds())
		sum += ns
		sumsq += ns * ns
		lo = min(lo, d)
		hi = max(hi, d)
		pc.Add(ns)
	}

	n := float64(len(samples))
	mean := sum / n
	variance := max(sumsq/n-mean*mean, 0)

	return Stats{
		Samples: len(samples),
		Min:     lo,
		Max:     hi,
		Mean:    time.Duration(math.Round(mean)),
		StdDev:  time.Duration(math.Round(math.Sqrt(variance))),
		P50:     time.Duration(pc.Percentile(50)),
		P90:     time.Duration(pc.Percentile(90)),
		P99:     time.Duration(pc.Percentile(99)),
		CI:      MeanInterval(samples, ConfidenceLevel),
	}
}

// Timer calls fn iterations times and summarises how long each call took.
// It stops early with the first error fn returns.
func Timer(iterations int, fn func() error) (Stats, error) {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	samples := make([]time.Duration, 0, iterations)
	for range iterations {
		start := time.Now()
		if err := fn(); err != nil {
			return Summarize(samples), err
		}
		samples = append(samples, time.Since(start))
	}
	return Summarize(samples), nil
}
