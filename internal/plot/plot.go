// Package plot projects samples onto scatter plot canvas coordinates. The
// coordinates live in a side table keyed by sample index; samples are never
// annotated.
package plot

import (
	"fmt"
	"math"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/geom"
)

// DefaultHitRadius is the pointer tolerance in canvas pixels.
const DefaultHitRadius = 10

type Canvas struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

var DefaultCanvas = Canvas{Width: 600, Height: 400, Padding: 50}

func (c Canvas) validate() error {
	// Negated comparisons also reject NaN.
	if !(c.Padding >= 0) || !(c.Width > 2*c.Padding) || !(c.Height > 2*c.Padding) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("canvas %vx%v cannot hold padding %v", c.Width, c.Height, c.Padding)
	}
	return nil
}

type Coord struct {
	Index    int           `json:"index"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Diabetic dataset.Label `json:"diabetic"`
}

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Table maps sample indexes to canvas coordinates.
type Table struct {
	XFeature dataset.Feature `json:"xFeature"`
	YFeature dataset.Feature `json:"yFeature"`
	XRange   Range           `json:"xRange"`
	YRange   Range           `json:"yRange"`
	Canvas   Canvas          `json:"canvas"`
	Coords   []Coord         `json:"coords"`
}

// Project scales each axis to the min/max of the feature. The y axis grows
// downwards as on a canvas. An axis with a single distinct value is drawn at
// its center.
func Project(set dataset.TrainingSet, x, y dataset.Feature, c Canvas) (*Table, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	t := &Table{XFeature: x, YFeature: y, Canvas: c, Coords: make([]Coord, 0, len(set))}
	if len(set) == 0 {
		return t, nil
	}

	t.XRange = rangeOf(set.Column(x))
	t.YRange = rangeOf(set.Column(y))
	plotWidth := c.Width - 2*c.Padding
	plotHeight := c.Height - 2*c.Padding
	for i, s := range set {
		t.Coords = append(t.Coords, Coord{
			Index:    i,
			X:        c.Padding + t.XRange.scale(s.Value(x))*plotWidth,
			Y:        c.Height - c.Padding - t.YRange.scale(s.Value(y))*plotHeight,
			Diabetic: s.Diabetic,
		})
	}
	return t, nil
}

func rangeOf(values []float64) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}

func (r Range) scale(v float64) float64 {
	if r.Max == r.Min {
		return 0.5
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// HitTest returns the index of the projected sample closest to (x, y) that
// lies strictly within radius. Ties keep the lower index.
func (t *Table) HitTest(x, y, radius float64) (int, bool) {
	pointer := geom.NewPoint(x, y)
	best, bestDistance := -1, radius
	for _, c := range t.Coords {
		d, err := pointer.DistanceTo(geom.NewPoint(c.X, c.Y), geom.EuclideanDistance)
		if err != nil {
			continue
		}
		if d < bestDistance {
			best, bestDistance = c.Index, d
		}
	}
	return best, best >= 0
}
