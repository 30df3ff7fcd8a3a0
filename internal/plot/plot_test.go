package plot

import (
	"math"
	"testing"

	"github.com/go-sod/clsdemo/internal/dataset"
)

func testSet() dataset.TrainingSet {
	return dataset.TrainingSet{
		dataset.NewSample(0, 0, 30, dataset.LabelNonDiabetic),
		dataset.NewSample(10, 20, 30, dataset.LabelDiabetic),
		dataset.NewSample(5, 10, 30, dataset.LabelNonDiabetic),
	}
}

func TestProject(t *testing.T) {
	t.Parallel()
	set := testSet()
	table, err := Project(set, dataset.FeatureGlucose, dataset.FeatureBloodPressure, DefaultCanvas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []Coord{
		{Index: 0, X: 50, Y: 350, Diabetic: dataset.LabelNonDiabetic},
		{Index: 1, X: 550, Y: 50, Diabetic: dataset.LabelDiabetic},
		{Index: 2, X: 300, Y: 200, Diabetic: dataset.LabelNonDiabetic},
	}
	if len(table.Coords) != len(expected) {
		t.Fatalf("coords, got: %d, expected: %d", len(table.Coords), len(expected))
	}
	for i := range expected {
		if table.Coords[i] != expected[i] {
			t.Errorf("coord %d, got: %+v, expected: %+v", i, table.Coords[i], expected[i])
		}
	}
	if table.XRange != (Range{Min: 0, Max: 10}) {
		t.Errorf("x range, got: %+v", table.XRange)
	}
	if set[1] != dataset.NewSample(10, 20, 30, dataset.LabelDiabetic) {
		t.Errorf("samples must not be modified")
	}
}

func TestProjectFlatAxis(t *testing.T) {
	t.Parallel()
	table, err := Project(testSet(), dataset.FeatureAge, dataset.FeatureGlucose, DefaultCanvas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range table.Coords {
		if c.X != 300 {
			t.Errorf("a flat axis must project to the center, got: %v", c.X)
		}
	}
}

func TestProjectInvalid(t *testing.T) {
	t.Parallel()
	if _, err := Project(testSet(), dataset.FeatureAge, dataset.FeatureGlucose, Canvas{Width: 80, Height: 400, Padding: 50}); err == nil {
		t.Errorf("an error must be returned when padding exceeds the canvas")
	}
	for _, c := range []Canvas{
		{Width: math.NaN(), Height: 400, Padding: 50},
		{Width: 600, Height: math.NaN(), Padding: 50},
		{Width: 600, Height: 400, Padding: math.NaN()},
		{Width: math.Inf(1), Height: 400, Padding: 50},
	} {
		if _, err := Project(testSet(), dataset.FeatureAge, dataset.FeatureGlucose, c); err == nil {
			t.Errorf("non-finite canvas %+v, got: nil, expected: error", c)
		}
	}
	table, err := Project(nil, dataset.FeatureAge, dataset.FeatureGlucose, DefaultCanvas)
	if err != nil || len(table.Coords) != 0 {
		t.Errorf("empty set, got: %v, %v", table, err)
	}
}

func TestHitTest(t *testing.T) {
	t.Parallel()
	table, err := Project(testSet(), dataset.FeatureGlucose, dataset.FeatureBloodPressure, DefaultCanvas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name  string
		x, y  float64
		index int
		hit   bool
	}{
		{name: "exact", x: 550, y: 50, index: 1, hit: true},
		{name: "near", x: 303, y: 204, index: 2, hit: true},
		{name: "on_radius", x: 60, y: 350, hit: false},
		{name: "miss", x: 100, y: 100, hit: false},
	}
	for _, test := range tests {
		index, hit := table.HitTest(test.x, test.y, DefaultHitRadius)
		if hit != test.hit || (hit && index != test.index) {
			t.Errorf("%s: got: %d %v, expected: %d %v", test.name, index, hit, test.index, test.hit)
		}
	}
}
