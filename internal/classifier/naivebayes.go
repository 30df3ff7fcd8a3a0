package classifier

import (
	"fmt"
	"math"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/stats"
)

// LikelihoodStep is the density of one query feature under each class.
type LikelihoodStep struct {
	Feature dataset.Feature       `json:"feature"`
	Value   float64               `json:"value"`
	Stats   [2]stats.FeatureStats `json:"stats"`
	Density ByClass               `json:"density"`
}

type NaiveBayesResult struct {
	Query                 dataset.Query       `json:"query"`
	TrainingSetSize       int                 `json:"trainingSetSize"`
	Fingerprint           string              `json:"fingerprint"`
	Prior                 ByClass             `json:"prior"`
	Stats                 [2]stats.ClassStats `json:"stats"`
	Likelihoods           []LikelihoodStep    `json:"likelihoods"`
	LikelihoodProduct     ByClass             `json:"likelihoodProduct"`
	PosteriorUnnormalized ByClass             `json:"posteriorUnnormalized"`
	Posterior             ByClass             `json:"posterior"`
	PredictedClass        dataset.Label       `json:"predictedClass"`
	Confidence            float64             `json:"confidence"`
}

func (r *NaiveBayesResult) Algorithm() Algorithm     { return AlgorithmNaiveBayes }
func (r *NaiveBayesResult) Predicted() dataset.Label { return r.PredictedClass }
func (r *NaiveBayesResult) Score() float64           { return r.Confidence }

type NaiveBayes struct {
	opts Options
}

func NewNaiveBayes(opts ...Option) (*NaiveBayes, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("unable creating naive bayes instance, %v", err)
	}
	return &NaiveBayes{opts: o}, nil
}

// ClassifyNaiveBayes runs Naive Bayes with the default options.
func ClassifyNaiveBayes(set dataset.TrainingSet, q dataset.Query) (*NaiveBayesResult, error) {
	return (&NaiveBayes{opts: defaultOptions}).Classify(set, q)
}

func (nb *NaiveBayes) Policy() DegeneratePolicy {
	return nb.opts.policy
}

func (nb *NaiveBayes) Classify(set dataset.TrainingSet, q dataset.Query) (*NaiveBayesResult, error) {
	if len(set) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	res := &NaiveBayesResult{
		Query:           q,
		TrainingSetSize: len(set),
		Fingerprint:     set.Fingerprint(),
	}
	priors := stats.Priors(set)
	for _, label := range dataset.Labels {
		res.Prior[label] = priors[label]
		res.Stats[label] = stats.ComputeClassStats(set, label)
	}

	if nb.opts.policy == PolicyStrict {
		if err := checkClassStats(set, res.Stats); err != nil {
			return nil, err
		}
	}

	res.LikelihoodProduct = ByClass{1, 1}
	res.Likelihoods = make([]LikelihoodStep, 0, len(dataset.Features))
	for _, f := range dataset.Features {
		x := q.Value(f)
		step := LikelihoodStep{Feature: f, Value: x}
		for _, label := range dataset.Labels {
			fs := res.Stats[label][f]
			density := stats.GaussianPDF(x, fs.Mean, fs.Variance)
			step.Stats[label] = fs
			step.Density[label] = density
			res.LikelihoodProduct[label] *= density
		}
		res.Likelihoods = append(res.Likelihoods, step)
	}

	for _, label := range dataset.Labels {
		res.PosteriorUnnormalized[label] = res.LikelihoodProduct[label] * res.Prior[label]
	}
	total := res.PosteriorUnnormalized[dataset.LabelNonDiabetic] + res.PosteriorUnnormalized[dataset.LabelDiabetic]
	if nb.opts.policy == PolicyStrict && (total == 0 || math.IsInf(total, 0)) {
		return nil, &InsufficientDataError{
			Label:  dataset.LabelNonDiabetic,
			Reason: fmt.Sprintf("posterior normalizer is %v", total),
		}
	}
	for _, label := range dataset.Labels {
		res.Posterior[label] = res.PosteriorUnnormalized[label] / total
	}

	res.PredictedClass = decide(res.Posterior[dataset.LabelNonDiabetic], res.Posterior[dataset.LabelDiabetic])
	res.Confidence = math.Max(res.Posterior[dataset.LabelNonDiabetic], res.Posterior[dataset.LabelDiabetic])
	return res, nil
}

func checkClassStats(set dataset.TrainingSet, cs [2]stats.ClassStats) error {
	for _, label := range dataset.Labels {
		if set.Count(label) == 0 {
			return &InsufficientDataError{Label: label, Reason: "class has no samples"}
		}
		for _, f := range dataset.Features {
			if cs[label][f].Degenerate() {
				return &InsufficientDataError{Label: label, Feature: f, Reason: "zero variance"}
			}
		}
	}
	return nil
}
