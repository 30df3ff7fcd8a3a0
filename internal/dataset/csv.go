package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("required column is missing")
	ErrEmptyCSV      = errors.New("csv has no header row")
)

const (
	columnGlucose       = "glucose"
	columnBloodPressure = "bloodpressure"
	columnAge           = "age"
	columnDiabetes      = "diabetes"
)

var exportHeader = []string{columnGlucose, columnBloodPressure, columnAge, columnDiabetes}

// ReadCSV parses a dataset with a header row. Header names are matched
// case-insensitively; rows whose field count differs from the header are
// skipped.
func ReadCSV(r io.Reader) (TrainingSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "diabetic" {
			name = columnDiabetes
		}
		idx[name] = i
	}
	for _, col := range exportHeader {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var (
		set  TrainingSet
		line = 1
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("error reading record on line %d: %w", line, err)
		}
		if len(record) != len(header) {
			continue
		}

		var values [4]float64
		for i, col := range exportHeader {
			raw := strings.TrimSpace(record[idx[col]])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %s: invalid number %q", line, col, raw)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d, column %s: value must be finite, got %q", line, col, raw)
			}
			values[i] = v
		}
		label := Label(values[3])
		if float64(label) != values[3] || !label.Valid() {
			return nil, fmt.Errorf("line %d: label must be 0 or 1, got %v", line, values[3])
		}
		set = append(set, NewSample(values[0], values[1], values[2], label))
	}

	return set, nil
}

// WriteCSV writes the dataset with the canonical header.
func WriteCSV(w io.Writer, set TrainingSet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range set {
		if err := writer.Write([]string{
			formatValue(s.Glucose),
			formatValue(s.BloodPressure),
			formatValue(s.Age),
			strconv.Itoa(int(s.Diabetic)),
		}); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
