package som

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindow(t *testing.T) {

	type test struct {
		row, col, radius int
		window           Window
	}

	tests := map[string]test{
		"center": {
			row: 5, col: 5, radius: 2,
			window: Window{XMin: 3, XMax: 7, YMin: 3, YMax: 7},
		},
		"corner-origin": {
			row: 0, col: 0, radius: 3,
			window: Window{XMin: 0, XMax: 3, YMin: 0, YMax: 3},
		},
		"corner-end": {
			row: 9, col: 7, radius: 2,
			window: Window{XMin: 7, XMax: 9, YMin: 5, YMax: 7},
		},
		"zero-radius": {
			row: 4, col: 2, radius: 0,
			window: Window{XMin: 4, XMax: 4, YMin: 2, YMax: 2},
		},
		"larger-than-grid": {
			row: 4, col: 2, radius: 100,
			window: Window{XMin: 0, XMax: 9, YMin: 0, YMax: 7},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWindow(tt.row, tt.col, tt.radius, 10, 8)
			assert.Equal(t, tt.window, w)
			assert.True(t, w.Contains(tt.row, tt.col))
		})
	}
}

func TestNeighborhood_Field(t *testing.T) {
	x, y := 7, 6

	for _, n := range []Neighborhood{NeighborhoodGeometricSeries, NeighborhoodExponential, NeighborhoodNone} {
		for radius := 0; radius < 4; radius++ {
			for row := 0; row < x; row++ {
				for col := 0; col < y; col++ {
					f, w := n.Field(row, col, radius, x, y)
					assert.Equal(t, 1.0, f.At(row, col), "%s at (%d,%d) r=%d", n, row, col, radius)
					assert.True(t, w.XMin >= 0 && w.XMax < x && w.YMin >= 0 && w.YMax < y)
					for i := 0; i < x; i++ {
						for j := 0; j < y; j++ {
							if !w.Contains(i, j) {
								assert.Equal(t, 0.0, f.At(i, j))
							} else {
								assert.True(t, f.At(i, j) > 0)
								assert.True(t, f.At(i, j) <= 1)
							}
						}
					}
				}
			}
		}
	}
}

func TestNeighborhood_Weights(t *testing.T) {

	type test struct {
		n     Neighborhood
		cells map[[2]int]float64
	}

	tests := map[string]test{
		"geometric_series": {
			n: NeighborhoodGeometricSeries,
			cells: map[[2]int]float64{
				{3, 3}: 1,
				{2, 3}: 0.5,
				{2, 2}: 0.5,
				{1, 2}: 0.25,
				{5, 5}: 0.25,
				{0, 0}: 0,
			},
		},
		"exponential": {
			n: NeighborhoodExponential,
			cells: map[[2]int]float64{
				{3, 3}: 1,
				{2, 3}: math.Exp(-1.0 / 8),
				{2, 2}: math.Exp(-2.0 / 8),
				{1, 1}: math.Exp(-8.0 / 8),
				{0, 0}: 0,
			},
		},
		"none": {
			n: NeighborhoodNone,
			cells: map[[2]int]float64{
				{3, 3}: 1,
				{1, 1}: 1,
				{5, 4}: 1,
				{0, 3}: 0,
				{6, 6}: 0,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, _ := tt.n.Field(3, 3, 2, 7, 7)
			for cell, v := range tt.cells {
				assert.InDelta(t, v, f.At(cell[0], cell[1]), 1e-12, "cell %v", cell)
			}
		})
	}
}
