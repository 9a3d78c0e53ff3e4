package performance

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceLevel is the coverage of the interval reported with every bench.
const ConfidenceLevel = 0.95

// ConfidenceInterval bounds the true mean solve time.
type ConfidenceInterval struct {
	Lower time.Duration `json:"lower_ns" yaml:"lower_ns"`
	Upper time.Duration `json:"upper_ns" yaml:"upper_ns"`
	Level float64       `json:"level" yaml:"level"`
}

// MeanInterval returns the Student's t confidence interval of the mean of
// samples at the given level. Fewer than two samples give the zero interval.
func MeanInterval(samples []time.Duration, level float64) ConfidenceInterval {
	n := len(samples)
	if n < 2 || level <= 0 || level >= 1 {
		return ConfidenceInterval{}
	}

	xs := make([]float64, n)
	for i, d := range samples {
		xs[i] = float64(d.Nanoseconds())
	}
	mean, sd := stat.MeanStdDev(xs, nil)

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	margin := t.Quantile(1-(1-level)/2) * sd / math.Sqrt(float64(n))

	return ConfidenceInterval{
		Lower: time.Duration(math.Round(max(mean-margin, 0))),
		Upper: time.Duration(math.Round(mean + margin)),
		Level: level,
	}
}
