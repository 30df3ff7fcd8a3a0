package dataset

import (
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestFilter_Apply(t *testing.T) {
	t.Parallel()
	diabetic := LabelDiabetic
	tests := []struct {
		name     string
		filter   Filter
		expected int
	}{
		{name: "zero_value", filter: Filter{}, expected: 20},
		{name: "search", filter: Filter{Search: "148"}, expected: 1},
		{name: "min_glucose", filter: Filter{Bounds: map[Column]Bounds{Column(FeatureGlucose): {Min: ptr(150)}}}, expected: 5},
		{name: "range_age", filter: Filter{Bounds: map[Column]Bounds{Column(FeatureAge): {Min: ptr(30), Max: ptr(33)}}}, expected: 7},
		{name: "label", filter: Filter{Label: &diabetic}, expected: 8},
		{
			name: "label_and_bounds",
			filter: Filter{
				Label:  &diabetic,
				Bounds: map[Column]Bounds{Column(FeatureBloodPressure): {Max: ptr(64)}},
			},
			expected: 4,
		},
	}
	for _, test := range tests {
		got := test.filter.Apply(Default())
		if len(got) != test.expected {
			t.Errorf("%s: rows, got: %d, expected: %d", test.name, len(got), test.expected)
		}
	}
}

func TestSorted(t *testing.T) {
	t.Parallel()
	set := TrainingSet{
		NewSample(200, 80, 40, LabelDiabetic),
		NewSample(100, 60, 20, LabelNonDiabetic),
		NewSample(100, 70, 30, LabelDiabetic),
	}
	asc := Sorted(set, Column(FeatureGlucose), false)
	if asc[0].BloodPressure != 60 || asc[1].BloodPressure != 70 || asc[2].Glucose != 200 {
		t.Errorf("ascending sort is not stable, got: %+v", asc)
	}
	desc := Sorted(set, Column(FeatureGlucose), true)
	if desc[0].Glucose != 200 || desc[1].BloodPressure != 60 {
		t.Errorf("descending sort, got: %+v", desc)
	}
	if set[0].Glucose != 200 {
		t.Errorf("sort must not modify its input")
	}
}

func TestParseColumn(t *testing.T) {
	t.Parallel()
	tests := map[string]Column{
		"glucose":       Column(FeatureGlucose),
		"BloodPressure": Column(FeatureBloodPressure),
		"age":           Column(FeatureAge),
		"diabetes":      ColumnLabel,
	}
	for in, expected := range tests {
		got, err := ParseColumn(in)
		if err != nil || got != expected {
			t.Errorf("parse %q, got: %v (%v), expected: %v", in, got, err, expected)
		}
	}
	if _, err := ParseColumn("insulin"); err == nil {
		t.Errorf("an error must be returned for unknown columns")
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		page       int
		size       int
		rows       int
		totalPages int
		expected   int
	}{
		{name: "first", page: 1, size: 8, rows: 8, totalPages: 3, expected: 1},
		{name: "last_partial", page: 3, size: 8, rows: 4, totalPages: 3, expected: 3},
		{name: "past_end", page: 9, size: 8, rows: 4, totalPages: 3, expected: 3},
		{name: "before_start", page: 0, size: 25, rows: 20, totalPages: 1, expected: 1},
	}
	for _, test := range tests {
		got, err := Paginate(Default(), test.page, test.size)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if len(got.Rows) != test.rows || got.TotalPages != test.totalPages || got.Page != test.expected {
			t.Errorf("%s: got rows=%d pages=%d page=%d, expected rows=%d pages=%d page=%d",
				test.name, len(got.Rows), got.TotalPages, got.Page, test.rows, test.totalPages, test.expected)
		}
	}
	if _, err := Paginate(Default(), 1, 0); err == nil {
		t.Errorf("an error must be returned for a zero page size")
	}
	empty, err := Paginate(nil, 1, 10)
	if err != nil || empty.TotalPages != 1 || len(empty.Rows) != 0 {
		t.Errorf("empty set pagination, got: %+v, %v", empty, err)
	}
}
