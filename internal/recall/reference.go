package recall

import (
	"fmt"
	"sort"

	"github.com/drakos74/scisom/internal/som"
)

// Color is an rgb pixel.
type Color [3]uint8

func (c Color) less(o Color) bool {
	for i := 0; i < 3; i++ {
		if c[i] != o[i] {
			return c[i] < o[i]
		}
	}
	return false
}

// Image is a row-major grid of colors.
type Image struct {
	X      int
	Y      int
	Pixels []Color
}

// NewImage creates a new image of x rows and y columns.
func NewImage(x, y int, pixels []Color) (*Image, error) {
	if x <= 0 || y <= 0 || len(pixels) != x*y {
		return nil, som.NewDimensionMismatch("image", []int{x, y}, []int{len(pixels)})
	}
	return &Image{
		X:      x,
		Y:      y,
		Pixels: pixels,
	}, nil
}

// ImageFromPixels drops the trailing cutOut pixels of a flat pixel list
// and reshapes the rest into an x by y image.
func ImageFromPixels(pixels []Color, x, y, cutOut int) (*Image, error) {
	if cutOut < 0 || cutOut > len(pixels) {
		return nil, fmt.Errorf("cannot cut %d pixels out of %d", cutOut, len(pixels))
	}
	return NewImage(x, y, pixels[:len(pixels)-cutOut])
}

// At returns the color of the given cell.
func (img *Image) At(row, col int) Color {
	return img.Pixels[row*img.Y+col]
}

// SelectMiddlePixel reduces an image made of square cells of block pixels
// to one pixel per cell, keeping the middle pixel of each cell.
func SelectMiddlePixel(img *Image, block int) (*Image, error) {
	if block <= 0 {
		return nil, fmt.Errorf("invalid block size %d", block)
	}
	x := img.X / block
	y := img.Y / block
	if x == 0 || y == 0 {
		return nil, fmt.Errorf("image of %dx%d is smaller than block size %d", img.X, img.Y, block)
	}
	pixels := make([]Color, 0, x*y)
	for i := 0; i < x; i++ {
		for j := 0; j < y; j++ {
			pixels = append(pixels, img.At(block/2+i*block, block/2+j*block))
		}
	}
	return NewImage(x, y, pixels)
}

// UniqueColors returns the distinct colors of the image in lexicographic order.
func UniqueColors(img *Image) []Color {
	set := make(map[Color]struct{})
	for _, p := range img.Pixels {
		set[p] = struct{}{}
	}
	colors := make([]Color, 0, len(set))
	for c := range set {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].less(colors[j])
	})
	return colors
}

// ReferenceMap assigns a population label to each cell of the grid.
type ReferenceMap struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Labels []int   `json:"labels"`
	Colors []Color `json:"colors,omitempty"`
}

// NewReferenceMap labels each cell with the index of its color among the sorted unique colors of the image.
func NewReferenceMap(img *Image) *ReferenceMap {
	colors := UniqueColors(img)
	index := make(map[Color]int, len(colors))
	for i, c := range colors {
		index[c] = i
	}
	labels := make([]int, len(img.Pixels))
	for i, p := range img.Pixels {
		labels[i] = index[p]
	}
	return &ReferenceMap{
		X:      img.X,
		Y:      img.Y,
		Labels: labels,
		Colors: colors,
	}
}

// ReferenceMapFromLabels creates a reference map out of row-major cell labels.
func ReferenceMapFromLabels(x, y int, labels []int) (*ReferenceMap, error) {
	if x <= 0 || y <= 0 || len(labels) != x*y {
		return nil, som.NewDimensionMismatch("reference map", []int{x, y}, []int{len(labels)})
	}
	return &ReferenceMap{
		X:      x,
		Y:      y,
		Labels: labels,
	}, nil
}

// Label returns the label of the given cell.
func (r *ReferenceMap) Label(row, col int) int {
	return r.Labels[row*r.Y+col]
}

// Color returns the color of the given label, if the map was created from an image.
func (r *ReferenceMap) Color(label int) (Color, bool) {
	if label < 0 || label >= len(r.Colors) {
		return Color{}, false
	}
	return r.Colors[label], true
}
