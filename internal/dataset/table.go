package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Column names a sortable, filterable table column: one of the features or
// the label.
type Column string

const ColumnLabel Column = "diabetic"

func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diabetic", "diabetes", "label":
		return ColumnLabel, nil
	}
	f, err := ParseFeature(s)
	if err != nil {
		return "", fmt.Errorf("unknown column %q", s)
	}
	return Column(f), nil
}

func (c Column) valueOf(s Sample) float64 {
	if c == ColumnLabel {
		return float64(s.Diabetic)
	}
	return s.Value(Feature(c))
}

type Bounds struct {
	Min *float64
	Max *float64
}

// Filter selects rows. The zero value matches everything.
type Filter struct {
	Search string
	Bounds map[Column]Bounds
	Label  *Label
}

func (f Filter) Match(s Sample) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		found := false
		for _, v := range []string{
			formatValue(s.Glucose),
			formatValue(s.BloodPressure),
			formatValue(s.Age),
			strconv.Itoa(int(s.Diabetic)),
		} {
			if strings.Contains(v, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for col, b := range f.Bounds {
		v := col.valueOf(s)
		if b.Min != nil && v < *b.Min {
			return false
		}
		if b.Max != nil && v > *b.Max {
			return false
		}
	}
	if f.Label != nil && s.Diabetic != *f.Label {
		return false
	}
	return true
}

// Apply returns the matching rows in their original order.
func (f Filter) Apply(set TrainingSet) TrainingSet {
	out := make(TrainingSet, 0, len(set))
	for _, s := range set {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

// Sorted returns a stably sorted copy of set.
func Sorted(set TrainingSet, col Column, desc bool) TrainingSet {
	out := set.Copy()
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return col.valueOf(out[i]) > col.valueOf(out[j])
		}
		return col.valueOf(out[i]) < col.valueOf(out[j])
	})
	return out
}

type Page struct {
	Rows       TrainingSet `json:"rows"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalRows  int         `json:"totalRows"`
	TotalPages int         `json:"totalPages"`
}

// Paginate cuts a 1-based page out of set. Pages past the end clamp to the
// last page, pages below 1 clamp to the first.
func Paginate(set TrainingSet, page, size int) (Page, error) {
	if size <= 0 {
		return Page{}, fmt.Errorf("page size must be positive, got %d", size)
	}
	total := (len(set) + size - 1) / size
	if total == 0 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * size
	end := start + size
	if end > len(set) {
		end = len(set)
	}
	return Page{
		Rows:       set[start:end].Copy(),
		Page:       page,
		PageSize:   size,
		TotalRows:  len(set),
		TotalPages: total,
	}, nil
}
