// Package stats provides the statistics used to validate generator output:
// fixed-width histograms, chi-square goodness of fit, lag-1 autocorrelation,
// a naive period search and summary moments.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram holds counts for equal-width bins over [Min, Max).
type Histogram struct {
	Min, Max float64

	// Edges has len(Counts)+1 entries.
	Edges  []float64
	Counts []int

	// Dropped counts values outside [Min, Max).
	Dropped int
}

// NewHistogram bins x into bins equal-width intervals over [min, max).
// Values outside the range, and NaNs, are counted in Dropped.
func NewHistogram(x []float64, bins int, min, max float64) *Histogram {
	h := &Histogram{
		Min:    min,
		Max:    max,
		Edges:  floats.Span(make([]float64, bins+1), min, max),
		Counts: make([]int, bins),
	}

	width := (max - min) / float64(bins)
	for _, v := range x {
		if !(v >= min && v < max) {
			h.Dropped++
			continue
		}
		bin := int(math.Floor((v - min) / width))
		// Rounding can push values just under max into the last+1 bin.
		if bin >= bins {
			bin = bins - 1
		}
		h.Counts[bin]++
	}

	return h
}

// Total returns the number of binned values.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// ChiSquare returns the chi-square statistic of the histogram against an
// expected count of n/bins per bin.
func (h *Histogram) ChiSquare(n int) float64 {
	bins := len(h.Counts)
	obs := make([]float64, bins)
	exp := make([]float64, bins)
	expected := float64(n) / float64(bins)
	for i, c := range h.Counts {
		obs[i] = float64(c)
		exp[i] = expected
	}
	return stat.ChiSquare(obs, exp)
}

// ChiSquarePValue returns the probability of a statistic at least as large as
// chi2 under a chi-square distribution with dof degrees of freedom.
func ChiSquarePValue(chi2 float64, dof int) float64 {
	return distuv.ChiSquared{K: float64(dof)}.Survival(chi2)
}

// Autocorrelation returns the lag-1 autocorrelation of x: the covariance of
// consecutive pairs averaged over n-1 pairs, divided by the population
// variance. It returns NaN for fewer than two values or zero variance.
func Autocorrelation(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return math.NaN()
	}

	mean := stat.Mean(x, nil)
	variance := stat.PopVariance(x, nil)
	if variance == 0 {
		return math.NaN()
	}

	var cov float64
	for i := 0; i < n-1; i++ {
		cov += (x[i] - mean) * (x[i+1] - mean)
	}
	cov /= float64(n - 1)

	return cov / variance
}

// NoPeriod is returned by Period when no repetition is found.
const NoPeriod = -1

// Period searches x for the shortest repeat: whenever a value recurs at
// distance p from its previous occurrence, the p values starting there must
// equal the p values starting at i. Worst case is O(n²).
func Period(x []float64) int {
	seen := make(map[float64]int, len(x))
	for i, v := range x {
		if start, ok := seen[v]; ok {
			p := i - start
			match := true
			for j := 0; j < p; j++ {
				if i+j >= len(x) || x[start+j] != x[i+j] {
					match = false
					break
				}
			}
			if match {
				return p
			}
		}
		seen[v] = i
	}
	return NoPeriod
}

// Summary holds sample moments and extremes.
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	Min, Max float64
}

// Summarize computes a Summary of x. Variance is the unbiased estimate.
func Summarize(x []float64) Summary {
	s := Summary{N: len(x)}
	if len(x) == 0 {
		s.Mean, s.Variance = math.NaN(), math.NaN()
		s.Min, s.Max = math.NaN(), math.NaN()
		return s
	}
	s.Mean, s.Variance = stat.MeanVariance(x, nil)
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	return s
}
