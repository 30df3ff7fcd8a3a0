// Package explain turns classification results into ordered, human readable
// sections that replay every step of the computation.
package explain

import (
	"fmt"
	"strings"

	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/dataset"
)

// TopDistances is the number of ranked samples shown in the KNN distance
// table.
const TopDistances = 10

type Tone int

const (
	ToneNone Tone = iota
	ToneNonDiabetic
	ToneDiabetic
	ToneHighlight
)

func toneOf(label dataset.Label) Tone {
	if label == dataset.LabelDiabetic {
		return ToneDiabetic
	}
	return ToneNonDiabetic
}

type Line struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

type Row struct {
	Cells   []string `json:"cells"`
	Nearest bool     `json:"nearest"`
	Tone    Tone     `json:"tone"`
}

type Table struct {
	Header []string `json:"header"`
	Rows   []Row    `json:"rows"`
}

type Section struct {
	Title string `json:"title"`
	Lines []Line `json:"lines,omitempty"`
	Table *Table `json:"table,omitempty"`
}

type Explanation struct {
	Algorithm  classifier.Algorithm `json:"algorithm"`
	Headline   string               `json:"headline"`
	Prediction dataset.Label        `json:"prediction"`
	Input      []Line               `json:"input"`
	Sections   []Section            `json:"sections"`
}

func Explain(res classifier.Result) (*Explanation, error) {
	switch r := res.(type) {
	case *classifier.NaiveBayesResult:
		return NaiveBayes(r), nil
	case *classifier.KNNResult:
		return KNN(r), nil
	default:
		return nil, fmt.Errorf("unable to explain result of type %T", res)
	}
}

func newExplanation(alg classifier.Algorithm, q dataset.Query, predicted dataset.Label, confidence float64) *Explanation {
	e := &Explanation{
		Algorithm:  alg,
		Prediction: predicted,
		Headline:   fmt.Sprintf("Prediction: %s (confidence: %s)", predicted, Percent(confidence)),
	}
	for _, f := range dataset.Features {
		e.Input = append(e.Input, Line{Text: fmt.Sprintf("%s: %s", f, Plain(q.Value(f)))})
	}
	return e
}

// classOrder lists the diabetic class first, the way the steps are read out.
var classOrder = []dataset.Label{dataset.LabelDiabetic, dataset.LabelNonDiabetic}

func NaiveBayes(r *classifier.NaiveBayesResult) *Explanation {
	e := newExplanation(classifier.AlgorithmNaiveBayes, r.Query, r.PredictedClass, r.Confidence)

	priors := Section{Title: "1. Prior probabilities"}
	for _, label := range classOrder {
		priors.Lines = append(priors.Lines, Line{
			Text: fmt.Sprintf("P(%s) = %s", label, Fixed(r.Prior.Of(label), 6)),
			Tone: toneOf(label),
		})
	}

	featureStats := Section{Title: "2. Feature statistics"}
	for _, f := range dataset.Features {
		for _, label := range classOrder {
			fs := r.Stats[label][f]
			featureStats.Lines = append(featureStats.Lines, Line{
				Text: fmt.Sprintf("%s, %s: μ = %s, σ² = %s", f, label, Fixed(fs.Mean, 2), Fixed(fs.Variance, 2)),
				Tone: toneOf(label),
			})
		}
	}

	likelihoods := Section{Title: "3. Likelihoods"}
	for _, step := range r.Likelihoods {
		for _, label := range classOrder {
			likelihoods.Lines = append(likelihoods.Lines, Line{
				Text: fmt.Sprintf("P(%s=%s | %s) = %s", step.Feature, Plain(step.Value), label, Exponential(step.Density.Of(label), 4)),
				Tone: toneOf(label),
			})
		}
	}

	combined := Section{Title: "4. Combined likelihoods"}
	posteriors := Section{Title: "5. Posterior probabilities"}
	for _, label := range classOrder {
		combined.Lines = append(combined.Lines, Line{
			Text: fmt.Sprintf("L(%s) = %s", label, Exponential(r.LikelihoodProduct.Of(label), 6)),
			Tone: toneOf(label),
		})
		tone := toneOf(label)
		if label == r.PredictedClass {
			tone = ToneHighlight
		}
		posteriors.Lines = append(posteriors.Lines, Line{
			Text: fmt.Sprintf("P(%s | X) = %s × prior, normalized = %s",
				label, Exponential(r.LikelihoodProduct.Of(label), 6), Fixed(r.Posterior.Of(label), 6)),
			Tone: tone,
		})
	}

	e.Sections = []Section{priors, featureStats, likelihoods, combined, posteriors}
	return e
}

func KNN(r *classifier.KNNResult) *Explanation {
	e := newExplanation(classifier.AlgorithmKNN, r.Query, r.PredictedClass, r.Confidence)

	top := len(r.Ranked)
	if top > TopDistances {
		top = TopDistances
	}
	table := &Table{Header: []string{"glucose", "bloodPressure", "age", "diabetic", "distance"}}
	for i, n := range r.Ranked[:top] {
		table.Rows = append(table.Rows, Row{
			Cells:   append(sampleCells(n.Sample), Fixed(n.Distance, 3)),
			Nearest: r.IsNearest(i),
			Tone:    toneOf(n.Sample.Diabetic),
		})
	}

	nearest := Section{Title: fmt.Sprintf("2. K=%d nearest neighbors", r.K)}
	for i, n := range r.Nearest {
		nearest.Lines = append(nearest.Lines, Line{
			Text: fmt.Sprintf("%d. G:%s, BP:%s, Age:%s  %s  %s",
				i+1, Plain(n.Sample.Glucose), Plain(n.Sample.BloodPressure), Plain(n.Sample.Age),
				n.Sample.Diabetic, Fixed(n.Distance, 3)),
			Tone: toneOf(n.Sample.Diabetic),
		})
	}

	voting := Section{Title: "3. Voting"}
	for _, label := range classOrder {
		tone := toneOf(label)
		if label == r.PredictedClass {
			tone = ToneHighlight
		}
		voting.Lines = append(voting.Lines, Line{
			Text: fmt.Sprintf("%s: %d %s", label, r.Votes[label], plural(r.Votes[label], "vote")),
			Tone: tone,
		})
	}

	e.Sections = []Section{
		{Title: fmt.Sprintf("1. Distance calculations (top %d)", top), Table: table},
		nearest,
		voting,
	}
	return e
}

func sampleCells(s dataset.Sample) []string {
	diabetic := "no"
	if s.Diabetic == dataset.LabelDiabetic {
		diabetic = "yes"
	}
	return []string{Plain(s.Glucose), Plain(s.BloodPressure), Plain(s.Age), diabetic}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// String renders the plain text form.
func (e *Explanation) String() string {
	var sb strings.Builder
	_ = e.render(&sb, plainPainter{})
	return sb.String()
}
