package classifier

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/geom"
)

func TestClassifyKNN(t *testing.T) {
	t.Parallel()
	res, err := ClassifyKNN(fourRows(), midQuery, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Nearest) != 2 {
		t.Fatalf("nearest, got: %d, expected: 2", len(res.Nearest))
	}
	if res.Nearest[0].Index != 2 || res.Nearest[1].Index != 1 {
		t.Errorf("nearest indexes, got: %d %d, expected: 2 1", res.Nearest[0].Index, res.Nearest[1].Index)
	}
	if res.Nearest[0].Distance != math.Sqrt(113) {
		t.Errorf("nearest distance, got: %v, expected: %v", res.Nearest[0].Distance, math.Sqrt(113))
	}
	if res.Votes != [2]int{0, 2} {
		t.Errorf("votes, got: %v, expected: [0 2]", res.Votes)
	}
	if res.PredictedClass != dataset.LabelDiabetic || res.Confidence != 1 {
		t.Errorf("prediction, got: %d (%v), expected: 1 (1)", res.PredictedClass, res.Confidence)
	}
	if res.Metric != string(geom.DistanceFuncTypeEuclidean) {
		t.Errorf("metric, got: %s", res.Metric)
	}
}

func TestClassifyKNNRanking(t *testing.T) {
	t.Parallel()
	set := dataset.Default()
	for _, k := range []int{1, 3, 5, 7, 20} {
		res, err := ClassifyKNN(set, dataset.Query{Glucose: 130, BloodPressure: 70, Age: 35}, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Ranked) != len(set) {
			t.Fatalf("k=%d: ranked, got: %d, expected: %d", k, len(res.Ranked), len(set))
		}
		for i := 0; i+1 < len(res.Ranked); i++ {
			if res.Ranked[i].Distance > res.Ranked[i+1].Distance {
				t.Errorf("k=%d: ranking must be non-decreasing at %d: %v > %v",
					k, i, res.Ranked[i].Distance, res.Ranked[i+1].Distance)
			}
		}
		if votes := res.Votes[0] + res.Votes[1]; votes != k {
			t.Errorf("k=%d: votes must sum to k, got: %d", k, votes)
		}
		if !reflect.DeepEqual(res.Nearest, res.Ranked[:k]) {
			t.Errorf("k=%d: nearest must be the ranked prefix", k)
		}
		if res.Ranked[0].Sample != set[res.Ranked[0].Index] {
			t.Errorf("k=%d: neighbor index must point at its sample", k)
		}
	}
}

func TestClassifyKNNStableTies(t *testing.T) {
	t.Parallel()
	set := dataset.TrainingSet{
		dataset.NewSample(1, 0, 0, dataset.LabelDiabetic),
		dataset.NewSample(-1, 0, 0, dataset.LabelNonDiabetic),
		dataset.NewSample(0, 1, 0, dataset.LabelDiabetic),
		dataset.NewSample(0, 0, 5, dataset.LabelNonDiabetic),
	}
	res, err := ClassifyKNN(set, dataset.Query{}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, expected := range []int{0, 1, 2, 3} {
		if res.Ranked[i].Index != expected {
			t.Errorf("rank %d, got index: %d, expected: %d", i, res.Ranked[i].Index, expected)
		}
	}
	if res.Votes != [2]int{1, 1} {
		t.Errorf("votes, got: %v, expected: [1 1]", res.Votes)
	}
	if res.PredictedClass != dataset.LabelNonDiabetic {
		t.Errorf("tied votes must resolve to class 0, got: %d", res.PredictedClass)
	}
	if res.Confidence != 0.5 {
		t.Errorf("confidence, got: %v, expected: 0.5", res.Confidence)
	}
}

func TestClassifyKNNLargeK(t *testing.T) {
	t.Parallel()
	res, err := ClassifyKNN(fourRows(), midQuery, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Nearest) != 4 {
		t.Errorf("nearest must use all samples, got: %d", len(res.Nearest))
	}
	if res.Votes != [2]int{2, 2} {
		t.Errorf("votes, got: %v, expected: [2 2]", res.Votes)
	}
	if res.PredictedClass != dataset.LabelNonDiabetic || res.Confidence != 0.4 {
		t.Errorf("prediction, got: %d (%v), expected: 0 (0.4)", res.PredictedClass, res.Confidence)
	}
}

func TestClassifyKNNInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		set  dataset.TrainingSet
		k    int
		err  error
	}{
		{name: "zero_k", set: fourRows(), k: 0},
		{name: "negative_k", set: fourRows(), k: -3},
		{name: "empty_set", set: nil, k: 3, err: ErrEmptyTrainingSet},
	}
	for _, test := range tests {
		_, err := ClassifyKNN(test.set, midQuery, test.k)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%s: error, got: %v, expected: %v", test.name, err, test.err)
			}
			continue
		}
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) || invalid.Name != "k" {
			t.Errorf("%s: error must be InvalidParameterError for k, got: %v", test.name, err)
		}
	}
}

func TestClassifyKNNIdempotent(t *testing.T) {
	t.Parallel()
	set := dataset.Default()
	q := dataset.Query{Glucose: 180, BloodPressure: 88, Age: 45}
	first, _ := ClassifyKNN(set, q, 3)
	second, _ := ClassifyKNN(set, q, 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ")
	}
}

func TestKNNWithDistance(t *testing.T) {
	t.Parallel()
	knn, err := NewKNN(WithDistance(geom.DistanceFuncTypeManhattan))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := knn.Classify(dataset.TrainingSet{dataset.NewSample(3, 4, 0, dataset.LabelDiabetic)}, dataset.Query{}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ranked[0].Distance != 7 || res.Metric != string(geom.DistanceFuncTypeManhattan) {
		t.Errorf("manhattan ranking, got: %v (%s)", res.Ranked[0].Distance, res.Metric)
	}

	if _, err := NewKNN(WithDistance("COSINE")); err == nil {
		t.Errorf("an error must be returned for an unknown metric")
	}
}

func TestEuclideanScenario(t *testing.T) {
	t.Parallel()
	set := dataset.TrainingSet{
		dataset.NewSample(0, 0, 0, dataset.LabelNonDiabetic),
		dataset.NewSample(3, 4, 0, dataset.LabelDiabetic),
	}
	res, err := ClassifyKNN(set, dataset.Query{}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ranked[1].Distance != 5 {
		t.Errorf("distance to (3,4,0), got: %v, expected: 5", res.Ranked[1].Distance)
	}
	if res.Ranked[0].Distance != 0 {
		t.Errorf("distance to itself, got: %v, expected: 0", res.Ranked[0].Distance)
	}
}
