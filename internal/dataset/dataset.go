package dataset

import (
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
)

// TypeColumn is the name of the label column of a dataset.
const TypeColumn = "type"

// Dataset is a row oriented set of samples with named feature columns and an optional label per row.
type Dataset struct {
	Columns  []string
	Features []xmath.Vector
	Type     []int
}

// New creates a dataset without labels.
func New(columns []string, features []xmath.Vector) (*Dataset, error) {
	for i, f := range features {
		if len(f) != len(columns) {
			return nil, fmt.Errorf("row %d has %d features but there are %d columns", i, len(f), len(columns))
		}
	}
	return &Dataset{
		Columns:  columns,
		Features: features,
	}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Features)
}

// Dim returns the number of feature columns.
func (d *Dataset) Dim() int {
	return len(d.Columns)
}

// Labelled checks if every row carries a label.
func (d *Dataset) Labelled() bool {
	return len(d.Type) > 0 && len(d.Type) == len(d.Features)
}

// WithType returns a copy of the dataset with the label of each row set to the given types.
// The features are shared with the original dataset.
func (d *Dataset) WithType(types []int) (*Dataset, error) {
	if len(types) != d.Len() {
		return nil, fmt.Errorf("cannot assign %d labels to %d rows", len(types), d.Len())
	}
	tt := make([]int, len(types))
	copy(tt, types)
	return &Dataset{
		Columns:  d.Columns,
		Features: d.Features,
		Type:     tt,
	}, nil
}

// WithFeatures returns a copy of the dataset with the features replaced, e.g. after rescaling.
func (d *Dataset) WithFeatures(features []xmath.Vector) (*Dataset, error) {
	if len(features) != d.Len() {
		return nil, fmt.Errorf("cannot replace %d rows with %d", d.Len(), len(features))
	}
	nd, err := New(d.Columns, features)
	if err != nil {
		return nil, err
	}
	nd.Type = d.Type
	return nd, nil
}
