package classify

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/explain"
)

// Number is a float64 that survives JSON encoding when it is not finite:
// NaN and the infinities are written as the strings "NaN", "Infinity" and
// "-Infinity".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type byClass struct {
	NonDiabetic Number `json:"nonDiabetic"`
	Diabetic    Number `json:"diabetic"`
}

func newByClass(b classifier.ByClass) byClass {
	return byClass{
		NonDiabetic: Number(b.Of(dataset.LabelNonDiabetic)),
		Diabetic:    Number(b.Of(dataset.LabelDiabetic)),
	}
}

type featureStats struct {
	Mean     Number `json:"mean"`
	Variance Number `json:"variance"`
	StdDev   Number `json:"stddev"`
}

type likelihood struct {
	Feature dataset.Feature `json:"feature"`
	Value   Number          `json:"value"`
	Density byClass         `json:"density"`
}

type naiveBayesResponse struct {
	Algorithm             classifier.Algorithm                        `json:"algorithm"`
	Query                 dataset.Query                               `json:"query"`
	TrainingSetSize       int                                         `json:"trainingSetSize"`
	Fingerprint           string                                      `json:"fingerprint"`
	Prior                 byClass                                     `json:"prior"`
	Stats                 map[string]map[dataset.Feature]featureStats `json:"stats"`
	Likelihoods           []likelihood                                `json:"likelihoods"`
	LikelihoodProduct     byClass                                     `json:"likelihoodProduct"`
	PosteriorUnnormalized byClass                                     `json:"posteriorUnnormalized"`
	Posterior             byClass                                     `json:"posterior"`
	PredictedClass        dataset.Label                               `json:"predictedClass"`
	Confidence            Number                                      `json:"confidence"`
	Explanation           *explain.Explanation                        `json:"explanation,omitempty"`
}

type neighbor struct {
	Index    int            `json:"index"`
	Sample   dataset.Sample `json:"sample"`
	Distance Number         `json:"distance"`
}

type votes struct {
	NonDiabetic int `json:"nonDiabetic"`
	Diabetic    int `json:"diabetic"`
}

type knnResponse struct {
	Algorithm       classifier.Algorithm `json:"algorithm"`
	Query           dataset.Query        `json:"query"`
	K               int                  `json:"k"`
	Metric          string               `json:"metric"`
	TrainingSetSize int                  `json:"trainingSetSize"`
	Fingerprint     string               `json:"fingerprint"`
	Ranked          []neighbor           `json:"ranked"`
	Nearest         []neighbor           `json:"nearest"`
	Votes           votes                `json:"votes"`
	PredictedClass  dataset.Label        `json:"predictedClass"`
	Confidence      Number               `json:"confidence"`
	Explanation     *explain.Explanation `json:"explanation,omitempty"`
}

func newNaiveBayesResponse(r *classifier.NaiveBayesResult) *naiveBayesResponse {
	resp := &naiveBayesResponse{
		Algorithm:             r.Algorithm(),
		Query:                 r.Query,
		TrainingSetSize:       r.TrainingSetSize,
		Fingerprint:           r.Fingerprint,
		Prior:                 newByClass(r.Prior),
		Stats:                 make(map[string]map[dataset.Feature]featureStats, len(dataset.Labels)),
		LikelihoodProduct:     newByClass(r.LikelihoodProduct),
		PosteriorUnnormalized: newByClass(r.PosteriorUnnormalized),
		Posterior:             newByClass(r.Posterior),
		PredictedClass:        r.PredictedClass,
		Confidence:            Number(r.Confidence),
	}
	for _, label := range dataset.Labels {
		perFeature := make(map[dataset.Feature]featureStats, len(dataset.Features))
		for f, fs := range r.Stats[label] {
			perFeature[f] = featureStats{Mean: Number(fs.Mean), Variance: Number(fs.Variance), StdDev: Number(fs.StdDev)}
		}
		resp.Stats[label.String()] = perFeature
	}
	for _, step := range r.Likelihoods {
		resp.Likelihoods = append(resp.Likelihoods, likelihood{
			Feature: step.Feature,
			Value:   Number(step.Value),
			Density: newByClass(step.Density),
		})
	}
	return resp
}

func newNeighbors(list []classifier.Neighbor) []neighbor {
	out := make([]neighbor, len(list))
	for i, n := range list {
		out[i] = neighbor{Index: n.Index, Sample: n.Sample, Distance: Number(n.Distance)}
	}
	return out
}

func newKNNResponse(r *classifier.KNNResult) *knnResponse {
	return &knnResponse{
		Algorithm:       r.Algorithm(),
		Query:           r.Query,
		K:               r.K,
		Metric:          r.Metric,
		TrainingSetSize: r.TrainingSetSize,
		Fingerprint:     r.Fingerprint,
		Ranked:          newNeighbors(r.Ranked),
		Nearest:         newNeighbors(r.Nearest),
		Votes: votes{
			NonDiabetic: r.Votes[dataset.LabelNonDiabetic],
			Diabetic:    r.Votes[dataset.LabelDiabetic],
		},
		PredictedClass: r.PredictedClass,
		Confidence:     Number(r.Confidence),
	}
}

// newResponse converts res into its wire form, optionally carrying the
// step by step explanation.
func newResponse(res classifier.Result, withExplanation bool) (interface{}, error) {
	var e *explain.Explanation
	if withExplanation {
		x, err := explain.Explain(res)
		if err != nil {
			return nil, err
		}
		e = x
	}
	switch r := res.(type) {
	case *classifier.NaiveBayesResult:
		resp := newNaiveBayesResponse(r)
		resp.Explanation = e
		return resp, nil
	case *classifier.KNNResult:
		resp := newKNNResponse(r)
		resp.Explanation = e
		return resp, nil
	}
	return nil, fmt.Errorf("unsupported result type %T", res)
}
