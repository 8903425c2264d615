package statistics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleOf(values ...float64) *Sample {
	s := &Sample{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func TestEmptySample(t *testing.T) {
	t.Parallel()

	s := &Sample{}
	if s.Mean() != 0 || s.StdDev() != 0 || s.StdError() != 0 {
		t.Error("empty sample should report zeros")
	}
	if s.Median() != 0 || s.Max() != 0 {
		t.Error("empty sample percentiles should be zero")
	}
}

func TestMeanAndVariance(t *testing.T) {
	t.Parallel()

	s := sampleOf(2, 4, 4, 4, 5, 5, 7, 9)
	if !almostEqual(s.Mean(), 5) {
		t.Errorf("expected mean 5, got %f", s.Mean())
	}
	// Sample variance of this classic set is 32/7.
	if !almostEqual(s.Variance(), 32.0/7.0) {
		t.Errorf("expected variance %f, got %f", 32.0/7.0, s.Variance())
	}
}

func TestSingleObservationHasNoVariance(t *testing.T) {
	t.Parallel()

	s := sampleOf(42)
	if s.Variance() != 0 {
		t.Errorf("one observation has no variance, got %f", s.Variance())
	}
	if !almostEqual(s.Mean(), 42) {
		t.Errorf("expected mean 42, got %f", s.Mean())
	}
}

func TestPercentiles(t *testing.T) {
	t.Parallel()

	s := sampleOf(5, 1, 4, 2, 3) // unsorted on purpose
	if got := s.Median(); !almostEqual(got, 3) {
		t.Errorf("expected median 3, got %f", got)
	}
	if got := s.Percentile(0.2); !almostEqual(got, 1) {
		t.Errorf("expected P20 of 1, got %f", got)
	}
	if got := s.Percentile(1.0); !almostEqual(got, 5) {
		t.Errorf("expected P100 of 5, got %f", got)
	}
	if got := s.Max(); !almostEqual(got, 5) {
		t.Errorf("expected max 5, got %f", got)
	}
}

func TestConfidenceIntervalContainsMean(t *testing.T) {
	t.Parallel()

	s := sampleOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	low, high := s.ConfidenceInterval95()
	if low >= s.Mean() || high <= s.Mean() {
		t.Errorf("interval [%f, %f] should straddle the mean %f", low, high, s.Mean())
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := sampleOf(1, 2, 3)
	b := sampleOf(4, 5, 6)
	a.Merge(b)

	if a.N != 6 {
		t.Errorf("expected 6 observations, got %d", a.N)
	}
	if !almostEqual(a.Mean(), 3.5) {
		t.Errorf("expected mean 3.5, got %f", a.Mean())
	}
	if !almostEqual(a.Max(), 6) {
		t.Errorf("expected max 6, got %f", a.Max())
	}

	a.Merge(nil) // no-op
	if a.N != 6 {
		t.Error("merging nil should not change the sample")
	}
}
