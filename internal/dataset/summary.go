package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summary is the dataset info panel. Ratios are nil for an empty set.
type Summary struct {
	Total                 int                  `json:"total"`
	DiabeticCount         int                  `json:"diabeticCount"`
	NonDiabeticCount      int                  `json:"nonDiabeticCount"`
	DiabeticPercentage    *float64             `json:"diabeticPercentage"`
	NonDiabeticPercentage *float64             `json:"nonDiabeticPercentage"`
	Averages              map[Feature]*float64 `json:"averages"`
}

func Summarize(set TrainingSet) Summary {
	s := Summary{
		Total:            len(set),
		DiabeticCount:    set.Count(LabelDiabetic),
		NonDiabeticCount: set.Count(LabelNonDiabetic),
		Averages:         make(map[Feature]*float64, len(Features)),
	}
	for _, f := range Features {
		s.Averages[f] = nil
	}
	if s.Total == 0 {
		return s
	}

	s.DiabeticPercentage = percent(s.DiabeticCount, s.Total)
	s.NonDiabeticPercentage = percent(s.NonDiabeticCount, s.Total)
	for _, f := range Features {
		avg := floats.Sum(set.Column(f)) / float64(s.Total)
		s.Averages[f] = &avg
	}
	return s
}

// percent rounds to one decimal place.
func percent(n, total int) *float64 {
	p := math.Round(float64(n)/float64(total)*1000) / 10
	return &p
}
