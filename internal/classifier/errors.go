package classifier

import (
	"errors"
	"fmt"

	"github.com/go-sod/clsdemo/internal/dataset"
)

var ErrEmptyTrainingSet = errors.New("training set is empty")

// InsufficientDataError is returned under the STRICT policy when the class
// statistics cannot parameterize a Gaussian density.
type InsufficientDataError struct {
	Label   dataset.Label
	Feature dataset.Feature
	Reason  string
}

func (e *InsufficientDataError) Error() string {
	if e.Feature == "" {
		return fmt.Sprintf("insufficient data for class %d: %s", e.Label, e.Reason)
	}
	return fmt.Sprintf("insufficient data for class %d, feature %s: %s", e.Label, e.Feature, e.Reason)
}

type InvalidParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}
