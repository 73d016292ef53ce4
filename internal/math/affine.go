package math

import (
	"errors"
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/drakos74/scisom/internal/buffer"
)

// ErrDegenerateData is returned when a feature column carries a single value and cannot be rescaled.
var ErrDegenerateData = errors.New("data has no variance")

// Uniform creates a target bound of the given dimension with the same value for all columns.
func Uniform(dim int, v float64) xmath.Vector {
	return xmath.Const(v)(dim, 0)
}

// Ranges collects the per column min and max of the given samples.
func Ranges(data []xmath.Vector) (min, max xmath.Vector, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("no data to collect ranges from")
	}
	sc := buffer.NewStatsCollector(len(data[0]))
	for i, v := range data {
		if err := sc.Push(v...); err != nil {
			return nil, nil, fmt.Errorf("could not collect row %d: %w", i, err)
		}
	}
	min = xmath.Vec(sc.Dim())
	max = xmath.Vec(sc.Dim())
	for j, s := range sc.Stats() {
		min[j] = s.Min()
		max[j] = s.Max()
	}
	return min, max, nil
}

// Rescale applies a per column affine transform mapping the range of each column of the data
// onto [targetMin, targetMax].
// The input is left untouched.
func Rescale(data []xmath.Vector, targetMin, targetMax xmath.Vector) ([]xmath.Vector, error) {
	dataMin, dataMax, err := Ranges(data)
	if err != nil {
		return nil, err
	}
	dim := len(dataMin)
	if len(targetMin) != dim || len(targetMax) != dim {
		return nil, fmt.Errorf("target bounds [%d,%d] do not match data dimension %d", len(targetMin), len(targetMax), dim)
	}
	for j := 0; j < dim; j++ {
		if dataMax[j] == dataMin[j] {
			return nil, fmt.Errorf("column %d has constant value %v: %w", j, dataMin[j], ErrDegenerateData)
		}
	}
	scaled := make([]xmath.Vector, len(data))
	for i, v := range data {
		w := xmath.Vec(dim)
		for j := 0; j < dim; j++ {
			w[j] = (v[j]-dataMin[j])/(dataMax[j]-dataMin[j])*(targetMax[j]-targetMin[j]) + targetMin[j]
		}
		scaled[i] = w
	}
	return scaled, nil
}
