package stats

import (
	"math"
	"testing"

	"github.com/go-sod/clsdemo/internal/dataset"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestComputeFeatureStats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []float64
		expected FeatureStats
	}{
		{name: "positive", values: []float64{2, 4, 4, 4, 5, 5, 7, 9}, expected: FeatureStats{Mean: 5, Variance: 4, StdDev: 2}},
		{name: "pair", values: []float64{100, 120}, expected: FeatureStats{Mean: 110, Variance: 100, StdDev: 10}},
		{name: "single", values: []float64{42}, expected: FeatureStats{Mean: 42, Variance: 0, StdDev: 0}},
		{name: "constant", values: []float64{7, 7, 7}, expected: FeatureStats{Mean: 7, Variance: 0, StdDev: 0}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeFeatureStats(test.values)
			if got != test.expected {
				t.Errorf("feature stats, got: %+v, expected: %+v", got, test.expected)
			}
		})
	}
}

func TestComputeFeatureStatsEmpty(t *testing.T) {
	t.Parallel()
	got := ComputeFeatureStats(nil)
	if !math.IsNaN(got.Mean) || !math.IsNaN(got.Variance) || !math.IsNaN(got.StdDev) {
		t.Errorf("empty input must propagate NaN, got: %+v", got)
	}
	if !got.Degenerate() {
		t.Errorf("empty stats must be degenerate")
	}
}

func TestFeatureStats_Degenerate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fs       FeatureStats
		expected bool
	}{
		{name: "regular", fs: FeatureStats{Mean: 1, Variance: 2}, expected: false},
		{name: "zero_variance", fs: FeatureStats{Mean: 1, Variance: 0}, expected: true},
		{name: "nan_mean", fs: FeatureStats{Mean: math.NaN(), Variance: 1}, expected: true},
	}
	for _, test := range tests {
		if got := test.fs.Degenerate(); got != test.expected {
			t.Errorf("%s: got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}

func TestComputeClassStats(t *testing.T) {
	t.Parallel()
	set := dataset.TrainingSet{
		dataset.NewSample(100, 80, 30, dataset.LabelNonDiabetic),
		dataset.NewSample(200, 90, 50, dataset.LabelDiabetic),
		dataset.NewSample(150, 85, 40, dataset.LabelDiabetic),
		dataset.NewSample(120, 75, 35, dataset.LabelNonDiabetic),
	}
	tests := []struct {
		label    dataset.Label
		feature  dataset.Feature
		expected FeatureStats
	}{
		{label: dataset.LabelNonDiabetic, feature: dataset.FeatureGlucose, expected: FeatureStats{Mean: 110, Variance: 100, StdDev: 10}},
		{label: dataset.LabelNonDiabetic, feature: dataset.FeatureBloodPressure, expected: FeatureStats{Mean: 77.5, Variance: 6.25, StdDev: 2.5}},
		{label: dataset.LabelDiabetic, feature: dataset.FeatureGlucose, expected: FeatureStats{Mean: 175, Variance: 625, StdDev: 25}},
		{label: dataset.LabelDiabetic, feature: dataset.FeatureAge, expected: FeatureStats{Mean: 45, Variance: 25, StdDev: 5}},
	}
	for _, test := range tests {
		got := ComputeClassStats(set, test.label)[test.feature]
		if got != test.expected {
			t.Errorf("class %d, feature %s, got: %+v, expected: %+v", test.label, test.feature, got, test.expected)
		}
	}
}

func TestPriors(t *testing.T) {
	t.Parallel()
	priors := Priors(dataset.Default())
	if priors[dataset.LabelDiabetic] != 0.4 || priors[dataset.LabelNonDiabetic] != 0.6 {
		t.Errorf("priors, got: %v", priors)
	}
	if sum := priors[0] + priors[1]; math.Abs(sum-1) > 1e-12 {
		t.Errorf("priors must sum to 1, got: %v", sum)
	}
}

func TestGaussianPDF(t *testing.T) {
	t.Parallel()
	if got, expected := GaussianPDF(0, 0, 1), 1/math.Sqrt(2*math.Pi); got != expected {
		t.Errorf("standard normal at origin, got: %v, expected: %v", got, expected)
	}
	if got := GaussianPDF(0, 0, 1); math.Abs(got-0.3989423) > 1e-7 {
		t.Errorf("standard normal at origin, got: %v", got)
	}
}

func TestGaussianPDFMatchesNormal(t *testing.T) {
	t.Parallel()
	params := []struct{ mean, variance float64 }{
		{0, 1}, {110, 100}, {175, 625}, {77.5, 6.25}, {-3, 0.5},
	}
	for _, p := range params {
		normal := distuv.Normal{Mu: p.mean, Sigma: math.Sqrt(p.variance)}
		for _, x := range []float64{p.mean - 7, p.mean - 1, p.mean, p.mean + 0.25, p.mean + 13} {
			got := GaussianPDF(x, p.mean, p.variance)
			expected := normal.Prob(x)
			if math.Abs(got-expected) > 1e-12*math.Max(1, expected) {
				t.Errorf("pdf(%v; %v, %v), got: %v, expected: %v", x, p.mean, p.variance, got, expected)
			}
		}
	}
}

func TestGaussianPDFShape(t *testing.T) {
	t.Parallel()
	mean, variance := 120.0, 49.0
	peak := GaussianPDF(mean, mean, variance)
	for _, d := range []float64{0.5, 1, 3, 10, 40} {
		left := GaussianPDF(mean-d, mean, variance)
		right := GaussianPDF(mean+d, mean, variance)
		if left != right {
			t.Errorf("density is not symmetric at ±%v, got: %v and %v", d, left, right)
		}
		if left >= peak {
			t.Errorf("density at mean±%v must be below the peak, got: %v >= %v", d, left, peak)
		}
	}
}

func TestGaussianPDFZeroVariance(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{5, 6} {
		if got := GaussianPDF(x, 5, 0); !math.IsNaN(got) {
			t.Errorf("zero variance at %v must yield NaN, got: %v", x, got)
		}
	}
}
