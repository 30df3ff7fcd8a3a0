package geom

// Point is a read-only feature vector. Methods never modify the receiver.
type Point []float64

func NewPoint(vec ...float64) Point {
	return vec
}

func (v Point) Dimensions() int {
	return len(v)
}

func (v Point) Dim(idx int) float64 {
	return v[idx]
}

func (v Point) Points() []float64 {
	return v
}

func (v Point) Copy() Point {
	var v1 = make(Point, len(v))
	copy(v1, v)
	return v1
}

func (v Point) SizeEqual(vec Point) bool {
	return len(v) == len(vec)
}

func (v Point) Equal(vec Point) bool {
	if len(v) != len(vec) {
		return false
	}
	for i, value := range v {
		if vec[i] != value {
			return false
		}
	}
	return true
}

// DistanceTo applies fn to the receiver and vec.
func (v Point) DistanceTo(vec Point, fn DistanceFunc) (float64, error) {
	return fn(v, vec)
}
