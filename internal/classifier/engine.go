package classifier

import (
	"fmt"

	"github.com/go-sod/clsdemo/internal/dataset"
)

// ProvideFn builds the Engine configured for the process.
type ProvideFn func() (*Engine, error)

// Engine bundles both classifiers with the same options and a default k.
type Engine struct {
	nb       *NaiveBayes
	knn      *KNN
	defaultK int
}

func NewEngine(cfg *Config) (*Engine, error) {
	opts := []Option{WithPolicy(cfg.Policy), WithDistance(cfg.Distance)}
	nb, err := NewNaiveBayes(opts...)
	if err != nil {
		return nil, err
	}
	knn, err := NewKNN(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultK <= 0 {
		return nil, fmt.Errorf("default k must be positive, got %d", cfg.DefaultK)
	}
	return &Engine{nb: nb, knn: knn, defaultK: cfg.DefaultK}, nil
}

func (e *Engine) DefaultK() int {
	return e.defaultK
}

func (e *Engine) NaiveBayes(set dataset.TrainingSet, q dataset.Query) (*NaiveBayesResult, error) {
	return e.nb.Classify(set, q)
}

func (e *Engine) KNN(set dataset.TrainingSet, q dataset.Query, k int) (*KNNResult, error) {
	return e.knn.Classify(set, q, k)
}

// Classify dispatches on algorithm. k is ignored by Naive Bayes.
func (e *Engine) Classify(alg Algorithm, set dataset.TrainingSet, q dataset.Query, k int) (Result, error) {
	switch alg {
	case AlgorithmNaiveBayes:
		res, err := e.NaiveBayes(set, q)
		if err != nil {
			return nil, err
		}
		return res, nil
	case AlgorithmKNN:
		res, err := e.KNN(set, q, k)
		if err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, &InvalidParameterError{Name: "algorithm", Value: alg, Reason: "unknown algorithm"}
	}
}
