package dataset

// Default returns a fresh copy of the built-in demo dataset.
func Default() TrainingSet {
	return defaultSamples.Copy()
}

var defaultSamples = TrainingSet{
	{Glucose: 148, BloodPressure: 72, Age: 50, Diabetic: LabelDiabetic},
	{Glucose: 85, BloodPressure: 66, Age: 31, Diabetic: LabelNonDiabetic},
	{Glucose: 183, BloodPressure: 64, Age: 32, Diabetic: LabelDiabetic},
	{Glucose: 89, BloodPressure: 66, Age: 21, Diabetic: LabelNonDiabetic},
	{Glucose: 137, BloodPressure: 40, Age: 33, Diabetic: LabelDiabetic},
	{Glucose: 116, BloodPressure: 74, Age: 30, Diabetic: LabelNonDiabetic},
	{Glucose: 78, BloodPressure: 50, Age: 26, Diabetic: LabelDiabetic},
	{Glucose: 115, BloodPressure: 76, Age: 36, Diabetic: LabelNonDiabetic},
	{Glucose: 197, BloodPressure: 70, Age: 45, Diabetic: LabelDiabetic},
	{Glucose: 125, BloodPressure: 96, Age: 54, Diabetic: LabelNonDiabetic},
	{Glucose: 110, BloodPressure: 92, Age: 37, Diabetic: LabelNonDiabetic},
	{Glucose: 168, BloodPressure: 74, Age: 44, Diabetic: LabelDiabetic},
	{Glucose: 139, BloodPressure: 80, Age: 31, Diabetic: LabelNonDiabetic},
	{Glucose: 189, BloodPressure: 60, Age: 23, Diabetic: LabelDiabetic},
	{Glucose: 166, BloodPressure: 72, Age: 19, Diabetic: LabelDiabetic},
	{Glucose: 100, BloodPressure: 70, Age: 26, Diabetic: LabelNonDiabetic},
	{Glucose: 118, BloodPressure: 84, Age: 47, Diabetic: LabelNonDiabetic},
	{Glucose: 107, BloodPressure: 74, Age: 29, Diabetic: LabelNonDiabetic},
	{Glucose: 103, BloodPressure: 30, Age: 33, Diabetic: LabelNonDiabetic},
	{Glucose: 115, BloodPressure: 70, Age: 30, Diabetic: LabelNonDiabetic},
}
