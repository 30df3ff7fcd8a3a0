package classifier

import "github.com/go-sod/clsdemo/internal/dataset"

// fourRows is the mixed training set used across classifier tests.
func fourRows() dataset.TrainingSet {
	return dataset.TrainingSet{
		dataset.NewSample(100, 80, 30, dataset.LabelNonDiabetic),
		dataset.NewSample(200, 90, 50, dataset.LabelDiabetic),
		dataset.NewSample(150, 85, 40, dataset.LabelDiabetic),
		dataset.NewSample(120, 75, 35, dataset.LabelNonDiabetic),
	}
}

var midQuery = dataset.Query{Glucose: 160, BloodPressure: 88, Age: 42}
