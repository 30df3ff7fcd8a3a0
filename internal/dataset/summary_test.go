package dataset

import "testing"

func TestSummarize(t *testing.T) {
	t.Parallel()
	s := Summarize(TrainingSet{
		NewSample(100, 80, 30, LabelDiabetic),
		NewSample(200, 70, 40, LabelNonDiabetic),
	})
	if s.Total != 2 || s.DiabeticCount != 1 || s.NonDiabeticCount != 1 {
		t.Errorf("counts, got: %+v", s)
	}
	if *s.Averages[FeatureGlucose] != 150 || *s.Averages[FeatureBloodPressure] != 75 || *s.Averages[FeatureAge] != 35 {
		t.Errorf("averages, got: %v %v %v",
			*s.Averages[FeatureGlucose], *s.Averages[FeatureBloodPressure], *s.Averages[FeatureAge])
	}
	if *s.DiabeticPercentage != 50 {
		t.Errorf("percentage, got: %v, expected: 50", *s.DiabeticPercentage)
	}
}

func TestSummarizeDefault(t *testing.T) {
	t.Parallel()
	s := Summarize(Default())
	if s.DiabeticCount != 8 || s.NonDiabeticCount != 12 {
		t.Errorf("counts, got: %d/%d, expected: 8/12", s.DiabeticCount, s.NonDiabeticCount)
	}
	if *s.DiabeticPercentage != 40 || *s.NonDiabeticPercentage != 60 {
		t.Errorf("percentages, got: %v/%v", *s.DiabeticPercentage, *s.NonDiabeticPercentage)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	s := Summarize(nil)
	if s.Total != 0 || s.DiabeticPercentage != nil || s.Averages[FeatureAge] != nil {
		t.Errorf("empty summary must carry no ratios, got: %+v", s)
	}
}
