package classifier

import (
	"fmt"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/pkg/pqueue"
)

// Neighbor is a training sample with its distance to the query. Index is the
// sample position in the training set.
type Neighbor struct {
	Index    int            `json:"index"`
	Sample   dataset.Sample `json:"sample"`
	Distance float64        `json:"distance"`
}

type KNNResult struct {
	Query           dataset.Query `json:"query"`
	K               int           `json:"k"`
	Metric          string        `json:"metric"`
	TrainingSetSize int           `json:"trainingSetSize"`
	Fingerprint     string        `json:"fingerprint"`
	// Ranked lists every sample by ascending distance, ties in training order.
	Ranked []Neighbor `json:"ranked"`
	// Nearest is the prefix of Ranked of length min(K, len(Ranked)).
	Nearest        []Neighbor    `json:"nearest"`
	Votes          [2]int        `json:"votes"`
	PredictedClass dataset.Label `json:"predictedClass"`
	Confidence     float64       `json:"confidence"`
}

func (r *KNNResult) Algorithm() Algorithm     { return AlgorithmKNN }
func (r *KNNResult) Predicted() dataset.Label { return r.PredictedClass }
func (r *KNNResult) Score() float64           { return r.Confidence }

// IsNearest reports whether the ranked neighbor at position i is among the
// k nearest.
func (r *KNNResult) IsNearest(i int) bool {
	return i < len(r.Nearest)
}

type KNN struct {
	opts Options
}

func NewKNN(opts ...Option) (*KNN, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("unable creating knn instance, %v", err)
	}
	return &KNN{opts: o}, nil
}

// ClassifyKNN runs KNN with the Euclidean metric.
func ClassifyKNN(set dataset.TrainingSet, q dataset.Query, k int) (*KNNResult, error) {
	return (&KNN{opts: defaultOptions}).Classify(set, q, k)
}

// Classify ranks every sample by distance to q and votes among the first k.
// A k larger than the training set uses all samples; confidence is still
// divided by k.
func (knn *KNN) Classify(set dataset.TrainingSet, q dataset.Query, k int) (*KNNResult, error) {
	if k <= 0 {
		return nil, &InvalidParameterError{Name: "k", Value: k, Reason: "must be a positive integer"}
	}
	if len(set) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	query := q.Vector()
	pq := pqueue.New[Neighbor]()
	for i, s := range set {
		distance, err := knn.opts.distance(query, s.Vector())
		if err != nil {
			return nil, fmt.Errorf("unable to compute distance between %v and %v: %w", query, s.Vector(), err)
		}
		pq.Push(Neighbor{Index: i, Sample: s, Distance: distance}, distance)
	}

	items := pq.PopAll()
	ranked := make([]Neighbor, len(items))
	for i, it := range items {
		ranked[i] = it.Value
	}
	n := k
	if n > len(ranked) {
		n = len(ranked)
	}

	res := &KNNResult{
		Query:           q,
		K:               k,
		Metric:          string(knn.opts.distanceType),
		TrainingSetSize: len(set),
		Fingerprint:     set.Fingerprint(),
		Ranked:          ranked,
		Nearest:         ranked[:n:n],
	}
	for _, nb := range res.Nearest {
		res.Votes[nb.Sample.Diabetic]++
	}

	nonDiabetic, diabetic := res.Votes[dataset.LabelNonDiabetic], res.Votes[dataset.LabelDiabetic]
	res.PredictedClass = decide(float64(nonDiabetic), float64(diabetic))
	top := nonDiabetic
	if diabetic > top {
		top = diabetic
	}
	res.Confidence = float64(top) / float64(k)
	return res, nil
}
