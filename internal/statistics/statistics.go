// Package statistics provides summary statistics over simulation
// observations.
package statistics

import (
	"math"
	"sort"
)

// Sample accumulates observations and answers summary questions about
// them. The zero value is ready to use.
type Sample struct {
	N    int
	Sum  float64
	Sum2 float64 // sum of squares for variance

	values []float64
}

// Add incorporates one observation
func (s *Sample) Add(v float64) {
	s.N++
	s.Sum += v
	s.Sum2 += v * v
	s.values = append(s.values, v)
}

// Merge folds another sample into this one
func (s *Sample) Merge(other *Sample) {
	if other == nil {
		return
	}
	s.N += other.N
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.values = append(s.values, other.values...)
}

// Mean returns the arithmetic mean of the observations
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Percentile returns the p-th percentile (0 < p < 1) using the
// nearest-rank method.
func (s *Sample) Percentile(p float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.values))
	copy(sorted, s.values)
	sort.Float64s(sorted)

	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

// Median returns the 50th percentile
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Max returns the largest observation
func (s *Sample) Max() float64 {
	max := math.Inf(-1)
	if len(s.values) == 0 {
		return 0
	}
	for _, v := range s.values {
		if v > max {
			max = v
		}
	}
	return max
}
