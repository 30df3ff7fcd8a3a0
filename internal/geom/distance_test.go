package geom

import "testing"

func TestEuclideanDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        []float64
		p1       []float64
		expected float64
		err      error
	}{
		{name: "right_triangle", p: []float64{0, 0, 0}, p1: []float64{3, 4, 0}, expected: 5},
		{name: "same_point", p: []float64{148, 72, 50}, p1: []float64{148, 72, 50}, expected: 0},
		{name: "two_dims", p: []float64{1.2, 2.0}, p1: []float64{2.0, 3.0}, expected: 1.2806248474865698},
		{name: "dim_mismatch", p: []float64{5, 2.0}, p1: []float64{3}, err: ErrDimNotEqual},
		{name: "dim_mismatch_reverse", p: []float64{2.0}, p1: []float64{3, 4.0}, err: ErrDimNotEqual},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := EuclideanDistance(test.p, test.p1)
			if err != test.err {
				t.Fatalf("unexpected error, got: %v, expected: %v", err, test.err)
			}
			if got != test.expected {
				t.Errorf(
					"the distance obtained does not correspond to the expected distance, got %f, expected %f",
					got, test.expected)
			}
		})
	}
}

func TestEuclideanDistanceSymmetric(t *testing.T) {
	t.Parallel()
	pairs := [][2][]float64{
		{{100, 80, 30}, {200, 90, 50}},
		{{160, 88, 42}, {120, 75, 35}},
		{{-1.5, 0, 7}, {3, -2.25, 0}},
	}
	for _, pair := range pairs {
		ab, _ := EuclideanDistance(pair[0], pair[1])
		ba, _ := EuclideanDistance(pair[1], pair[0])
		if ab != ba {
			t.Errorf("distance is not symmetric, got: %v and %v", ab, ba)
		}
	}
}

func TestChebyshevDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        []float64
		p1       []float64
		expected float64
		err      error
	}{
		{name: "positive", p: []float64{1.2, 2.0}, p1: []float64{2.0, 3.0}, expected: 1},
		{name: "positive_larger", p: []float64{10, 2.0}, p1: []float64{5, 3.0}, expected: 5},
		{name: "dim_mismatch", p: []float64{5, 2.0}, p1: []float64{3}, err: ErrDimNotEqual},
	}
	for _, test := range tests {
		got, err := ChebyshevDistance(test.p, test.p1)
		if err != test.err {
			t.Errorf("%s: unexpected error, got: %v, expected: %v", test.name, err, test.err)
		}
		if got != test.expected {
			t.Errorf("%s: got %f, expected %f", test.name, got, test.expected)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        []float64
		p1       []float64
		expected float64
		err      error
	}{
		{name: "positive", p: []float64{1.5, 2.0}, p1: []float64{2.0, 3.0}, expected: 1.5},
		{name: "positive_larger", p: []float64{10, 2.0}, p1: []float64{5, 3.0}, expected: 6},
		{name: "dim_mismatch", p: []float64{2.0}, p1: []float64{3, 4.0}, err: ErrDimNotEqual},
	}
	for _, test := range tests {
		got, err := ManhattanDistance(test.p, test.p1)
		if err != test.err {
			t.Errorf("%s: unexpected error, got: %v, expected: %v", test.name, err, test.err)
		}
		if got != test.expected {
			t.Errorf("%s: got %f, expected %f", test.name, got, test.expected)
		}
	}
}

func TestDistanceFuncFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		typ      DistanceFuncType
		expected float64
		err      bool
	}{
		{name: "default", typ: "", expected: 5},
		{name: "euclidean", typ: DistanceFuncTypeEuclidean, expected: 5},
		{name: "manhattan", typ: DistanceFuncTypeManhattan, expected: 7},
		{name: "chebyshev", typ: DistanceFuncTypeChebyshev, expected: 4},
		{name: "unknown", typ: "COSINE", err: true},
	}
	for _, test := range tests {
		fn, err := DistanceFuncFor(test.typ)
		if test.err {
			if err == nil {
				t.Errorf("%s: an error must be returned for %q", test.name, test.typ)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		got, _ := fn([]float64{0, 0, 0}, []float64{3, 4, 0})
		if got != test.expected {
			t.Errorf("%s: got %f, expected %f", test.name, got, test.expected)
		}
	}
}
