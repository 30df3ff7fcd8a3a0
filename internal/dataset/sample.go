// Package dataset holds the labeled diabetes samples the classifiers are
// trained on, together with the table operations the demo exposes over them.
package dataset

import (
	"fmt"
	"strings"

	"github.com/go-sod/clsdemo/internal/geom"
)

type Label int

const (
	LabelNonDiabetic Label = 0
	LabelDiabetic    Label = 1
)

// Labels lists the class values in tie-break order.
var Labels = []Label{LabelNonDiabetic, LabelDiabetic}

func (l Label) Valid() bool {
	return l == LabelNonDiabetic || l == LabelDiabetic
}

func (l Label) String() string {
	if l == LabelDiabetic {
		return "diabetic"
	}
	return "non-diabetic"
}

type Feature string

const (
	FeatureGlucose       Feature = "glucose"
	FeatureBloodPressure Feature = "bloodPressure"
	FeatureAge           Feature = "age"
)

// Features is the fixed feature order used for vectors, statistics and
// likelihood steps.
var Features = []Feature{FeatureGlucose, FeatureBloodPressure, FeatureAge}

// ParseFeature accepts feature names case-insensitively.
func ParseFeature(s string) (Feature, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "glucose":
		return FeatureGlucose, nil
	case "bloodpressure", "blood_pressure", "bp":
		return FeatureBloodPressure, nil
	case "age":
		return FeatureAge, nil
	default:
		return "", fmt.Errorf("unknown feature %q", s)
	}
}

// Sample is a labeled observation. It is passed by value and never modified
// after construction.
type Sample struct {
	Glucose       float64 `json:"glucose"`
	BloodPressure float64 `json:"bloodPressure"`
	Age           float64 `json:"age"`
	Diabetic      Label   `json:"diabetic"`
}

func NewSample(glucose, bloodPressure, age float64, diabetic Label) Sample {
	return Sample{Glucose: glucose, BloodPressure: bloodPressure, Age: age, Diabetic: diabetic}
}

func (s Sample) Value(f Feature) float64 {
	return valueOf(f, s.Glucose, s.BloodPressure, s.Age)
}

func (s Sample) Vector() geom.Point {
	return geom.NewPoint(s.Glucose, s.BloodPressure, s.Age)
}

func (s Sample) Query() Query {
	return Query{Glucose: s.Glucose, BloodPressure: s.BloodPressure, Age: s.Age}
}

// Query is an unlabeled point to classify.
type Query struct {
	Glucose       float64 `json:"glucose"`
	BloodPressure float64 `json:"bloodPressure"`
	Age           float64 `json:"age"`
}

func (q Query) Value(f Feature) float64 {
	return valueOf(f, q.Glucose, q.BloodPressure, q.Age)
}

func (q Query) Vector() geom.Point {
	return geom.NewPoint(q.Glucose, q.BloodPressure, q.Age)
}

func valueOf(f Feature, glucose, bloodPressure, age float64) float64 {
	switch f {
	case FeatureGlucose:
		return glucose
	case FeatureBloodPressure:
		return bloodPressure
	case FeatureAge:
		return age
	default:
		panic(fmt.Sprintf("dataset: unknown feature %q", f))
	}
}

// TrainingSet is an ordered sample sequence. Order matters: KNN breaks
// distance ties by position.
type TrainingSet []Sample

func (ts TrainingSet) Len() int {
	return len(ts)
}

// Partition returns the samples carrying label, preserving order.
func (ts TrainingSet) Partition(label Label) TrainingSet {
	part := make(TrainingSet, 0, len(ts))
	for _, s := range ts {
		if s.Diabetic == label {
			part = append(part, s)
		}
	}
	return part
}

// Column returns the values of feature f in sample order.
func (ts TrainingSet) Column(f Feature) []float64 {
	col := make([]float64, len(ts))
	for i, s := range ts {
		col[i] = s.Value(f)
	}
	return col
}

func (ts TrainingSet) Count(label Label) int {
	var n int
	for _, s := range ts {
		if s.Diabetic == label {
			n++
		}
	}
	return n
}

func (ts TrainingSet) Copy() TrainingSet {
	c := make(TrainingSet, len(ts))
	copy(c, ts)
	return c
}
