package som

import (
	"math"
)

// Window is the square region around a winning cell that takes part in an update.
// Bounds are inclusive and always within [0, dim-1].
type Window struct {
	XMin int
	XMax int
	YMin int
	YMax int
}

// NewWindow creates the update window of the given radius around (row, col) on an x by y grid.
func NewWindow(row, col, radius, x, y int) Window {
	if radius < 0 {
		radius = 0
	}
	return Window{
		XMin: clamp(row-radius, 0, x-1),
		XMax: clamp(row+radius, 0, x-1),
		YMin: clamp(col-radius, 0, y-1),
		YMax: clamp(col+radius, 0, y-1),
	}
}

// Contains checks if the cell is inside the window.
func (w Window) Contains(row, col int) bool {
	return row >= w.XMin && row <= w.XMax && col >= w.YMin && col <= w.YMax
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Field is an x by y grid of update weights.
type Field struct {
	X      int
	Y      int
	Values []float64
}

// At returns the weight of the given cell.
func (f Field) At(row, col int) float64 {
	return f.Values[row*f.Y+col]
}

// Field computes the update weights around the winning cell (row, col).
// Cells outside the window of the given radius carry a zero weight.
func (n Neighborhood) Field(row, col, radius, x, y int) (Field, Window) {
	w := NewWindow(row, col, radius, x, y)
	f := Field{
		X:      x,
		Y:      y,
		Values: make([]float64, x*y),
	}
	for i := w.XMin; i <= w.XMax; i++ {
		for j := w.YMin; j <= w.YMax; j++ {
			f.Values[i*y+j] = n.weight(i-row, j-col, radius)
		}
	}
	return f, w
}

func (n Neighborhood) weight(dr, dc, radius int) float64 {
	switch n {
	case NeighborhoodGeometricSeries:
		d := abs(dr)
		if c := abs(dc); c > d {
			d = c
		}
		return 1 / math.Pow(2, float64(d))
	case NeighborhoodExponential:
		if radius == 0 {
			// only the winning cell is in the window
			return 1
		}
		d2 := float64(dr*dr + dc*dc)
		return math.Exp(-d2 / (2 * float64(radius*radius)))
	}
	return 1
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
