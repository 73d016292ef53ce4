package math

import (
	"errors"
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescale(t *testing.T) {

	data := []xmath.Vector{
		{1, -10, 100},
		{3, 0, 200},
		{2, 10, 400},
	}

	scaled, err := Rescale(data, Uniform(3, 0), Uniform(3, 1))
	require.NoError(t, err)
	require.Len(t, scaled, 3)

	assert.InDeltaSlice(t, []float64{0, 0, 0}, []float64(scaled[0]), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.5, 1.0 / 3}, []float64(scaled[1]), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1}, []float64(scaled[2]), 1e-12)

	// input stays untouched
	assert.Equal(t, xmath.Vector{1, -10, 100}, data[0])
}

func TestRescale_RoundTrip(t *testing.T) {

	type test struct {
		data []xmath.Vector
	}

	tests := map[string]test{
		"positive": {
			data: []xmath.Vector{{1, 5}, {2, 7}, {3, 6}, {2.5, 5.5}},
		},
		"mixed": {
			data: []xmath.Vector{{-1, 0.001}, {1, 0.002}, {0.25, 0.0015}},
		},
		"negative": {
			data: []xmath.Vector{{-100, -3}, {-50, -1}, {-75, -2}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			min, max, err := Ranges(tt.data)
			require.NoError(t, err)

			unit, err := Rescale(tt.data, Uniform(len(min), 0), Uniform(len(min), 1))
			require.NoError(t, err)

			back, err := Rescale(unit, min, max)
			require.NoError(t, err)

			for i := range tt.data {
				assert.InDeltaSlice(t, []float64(tt.data[i]), []float64(back[i]), 1e-9)
			}
		})
	}
}

func TestRescale_Degenerate(t *testing.T) {
	data := []xmath.Vector{
		{1, 2},
		{2, 2},
		{3, 2},
	}
	_, err := Rescale(data, Uniform(2, -1), Uniform(2, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateData))
	assert.Contains(t, err.Error(), "column 1")
}

func TestRescale_Errors(t *testing.T) {
	_, err := Rescale(nil, Uniform(1, 0), Uniform(1, 1))
	assert.Error(t, err)

	_, err = Rescale([]xmath.Vector{{1, 2}, {2, 3}}, Uniform(3, 0), Uniform(3, 1))
	assert.Error(t, err)

	_, err = Rescale([]xmath.Vector{{1, 2}, {2}}, Uniform(2, 0), Uniform(2, 1))
	assert.Error(t, err)
}
