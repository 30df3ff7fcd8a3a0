// Package classifier implements the Gaussian Naive Bayes and K-Nearest
// Neighbors classifiers. Both are pure functions of the training set and the
// query: nothing is cached between calls and the training set is never
// modified. Results carry every intermediate value so that a presenter can
// replay the arithmetic step by step.
package classifier

import (
	"fmt"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/geom"
)

type Algorithm string

const (
	AlgorithmNaiveBayes Algorithm = "naive-bayes"
	AlgorithmKNN        Algorithm = "knn"
)

func (a Algorithm) Validate() error {
	switch a {
	case AlgorithmNaiveBayes, AlgorithmKNN:
		return nil
	default:
		return &InvalidParameterError{Name: "algorithm", Value: a, Reason: "unknown algorithm"}
	}
}

// DegeneratePolicy selects what happens when a class has no samples or a
// feature has zero variance within a class.
type DegeneratePolicy string

const (
	// PolicyPropagate lets NaN and Inf flow into the result.
	PolicyPropagate DegeneratePolicy = "PROPAGATE"
	// PolicyStrict fails with InsufficientDataError instead.
	PolicyStrict DegeneratePolicy = "STRICT"
)

func (p DegeneratePolicy) Validate() error {
	switch p {
	case PolicyPropagate, PolicyStrict:
		return nil
	default:
		return fmt.Errorf("unknown degenerate policy: %s", p)
	}
}

// Result is the tagged union of NaiveBayesResult and KNNResult.
type Result interface {
	Algorithm() Algorithm
	Predicted() dataset.Label
	Score() float64
}

var (
	_ Result = (*NaiveBayesResult)(nil)
	_ Result = (*KNNResult)(nil)
)

// ByClass holds one value per label, indexed by the label itself.
type ByClass [2]float64

func (b ByClass) Of(label dataset.Label) float64 {
	return b[label]
}

// decide applies the shared tie-break: class 1 only on a strict win.
func decide(nonDiabetic, diabetic float64) dataset.Label {
	if diabetic > nonDiabetic {
		return dataset.LabelDiabetic
	}
	return dataset.LabelNonDiabetic
}

type Option func(*Options)

type Options struct {
	policy       DegeneratePolicy
	distance     geom.DistanceFunc
	distanceType geom.DistanceFuncType
}

var defaultOptions = Options{
	policy:       PolicyPropagate,
	distance:     geom.EuclideanDistance,
	distanceType: geom.DistanceFuncTypeEuclidean,
}

func WithPolicy(p DegeneratePolicy) Option {
	return func(o *Options) {
		o.policy = p
	}
}

// WithDistance replaces the KNN metric. Unknown types are rejected by the
// constructors.
func WithDistance(t geom.DistanceFuncType) Option {
	return func(o *Options) {
		o.distanceType = t
		o.distance = nil
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	if err := o.policy.Validate(); err != nil {
		return Options{}, err
	}
	if o.distance == nil {
		fn, err := geom.DistanceFuncFor(o.distanceType)
		if err != nil {
			return Options{}, err
		}
		o.distance = fn
	}
	return o, nil
}
