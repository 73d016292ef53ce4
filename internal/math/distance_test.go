package math

import (
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid() []xmath.Vector {
	// 3x3 grid with distinct prototypes
	protos := make([]xmath.Vector, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			protos = append(protos, xmath.Vector{float64(i), float64(j)})
		}
	}
	return protos
}

func TestNearest(t *testing.T) {

	type test struct {
		query    xmath.Vector
		index    int
		distance float64
	}

	tests := map[string]test{
		"exact-first": {
			query: xmath.Vector{0, 0},
			index: 0,
		},
		"exact-middle": {
			query: xmath.Vector{1, 2},
			index: 5,
		},
		"exact-last": {
			query: xmath.Vector{2, 2},
			index: 8,
		},
		"close": {
			query:    xmath.Vector{2.1, 0.1},
			index:    6,
			distance: 0.14142135623730956,
		},
		"tie-lowest-index": {
			query:    xmath.Vector{0.5, 0},
			index:    0,
			distance: 0.5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			idx, d, err := Nearest(grid(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.index, idx)
			assert.InDelta(t, tt.distance, d, 1e-9)
		})
	}
}

func TestNearest_Errors(t *testing.T) {
	_, _, err := Nearest(nil, xmath.Vector{1})
	assert.Error(t, err)

	_, _, err = Nearest(grid(), xmath.Vector{1, 2, 3})
	assert.Error(t, err)
}

func TestNearestAll(t *testing.T) {
	queries := []xmath.Vector{
		{0, 0},
		{1.9, 1.9},
		{0.5, 0},
		{1, 0.2},
	}
	idx, d, err := NearestAll(grid(), queries)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8, 0, 3}, idx)
	assert.Len(t, d, len(queries))
	assert.Equal(t, 0.0, d[0])

	// batch and single search must agree
	for i, q := range queries {
		single, _, err := Nearest(grid(), q)
		require.NoError(t, err)
		assert.Equal(t, single, idx[i])
	}
}

func TestDistanceMatrix(t *testing.T) {
	d, err := DistanceMatrix(grid(), []xmath.Vector{{0, 0}, {2, 2}})
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 9, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 0.0, d.At(8, 1))
	assert.InDelta(t, 2.8284271247461903, d.At(8, 0), 1e-9)

	_, err = DistanceMatrix(grid(), nil)
	assert.Error(t, err)
}

func TestUnravel(t *testing.T) {
	x, y := 3, 4
	for idx := 0; idx < x*y; idx++ {
		row, col := Unravel(idx, x, y)
		assert.True(t, row >= 0 && row < x)
		assert.True(t, col >= 0 && col < y)
		assert.Equal(t, idx, Ravel(row, col, y))
	}
	row, col := Unravel(7, x, y)
	assert.Equal(t, 1, row)
	assert.Equal(t, 3, col)
}
