// Package stats computes the per-class feature statistics and the Gaussian
// density used by the Naive Bayes classifier.
package stats

import (
	"math"

	"github.com/go-sod/clsdemo/internal/dataset"
	"gonum.org/v1/gonum/floats"
)

type FeatureStats struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stddev"`
}

// Degenerate reports whether the statistics cannot parameterize a density:
// no samples (non-finite mean) or zero variance.
func (fs FeatureStats) Degenerate() bool {
	return math.IsNaN(fs.Mean) || math.IsInf(fs.Mean, 0) ||
		math.IsNaN(fs.Variance) || fs.Variance == 0
}

type ClassStats map[dataset.Feature]FeatureStats

// ComputeFeatureStats uses the population variance (divisor n).
// An empty slice yields NaN for every field.
func ComputeFeatureStats(values []float64) FeatureStats {
	count := float64(len(values))
	mean := floats.Sum(values) / count

	var ss float64
	for _, v := range values {
		ss += math.Pow(v-mean, 2)
	}
	variance := ss / count

	return FeatureStats{Mean: mean, Variance: variance, StdDev: math.Sqrt(variance)}
}

// ComputeClassStats computes statistics for every feature over the samples
// carrying label.
func ComputeClassStats(set dataset.TrainingSet, label dataset.Label) ClassStats {
	part := set.Partition(label)
	cs := make(ClassStats, len(dataset.Features))
	for _, f := range dataset.Features {
		cs[f] = ComputeFeatureStats(part.Column(f))
	}
	return cs
}

// Priors estimates class probabilities as class frequencies.
func Priors(set dataset.TrainingSet) map[dataset.Label]float64 {
	total := float64(len(set))
	priors := make(map[dataset.Label]float64, len(dataset.Labels))
	for _, label := range dataset.Labels {
		priors[label] = float64(set.Count(label)) / total
	}
	return priors
}

// GaussianPDF is the normal density with the given mean and variance. A zero
// variance is not guarded and yields NaN or Inf.
func GaussianPDF(x, mean, variance float64) float64 {
	coefficient := 1 / math.Sqrt(2*math.Pi*variance)
	exponent := -math.Pow(x-mean, 2) / (2 * variance)
	return coefficient * math.Exp(exponent)
}
