package som

import (
	"math/rand"

	"github.com/drakos74/go-ex-machina/xmath"
)

// Cube is the x by y grid of prototype vectors of dimension d.
// Weights are stored row-major with the prototype of cell (row, col) at [(row*Y+col)*D, (row*Y+col+1)*D).
type Cube struct {
	X       int       `json:"x"`
	Y       int       `json:"y"`
	D       int       `json:"d"`
	Weights []float64 `json:"weights"`
}

// NewCube creates a new cube with uniform random weights in [0,1).
func NewCube(x, y, d int, rng *rand.Rand) *Cube {
	weights := make([]float64, x*y*d)
	for i := range weights {
		weights[i] = rng.Float64()
	}
	return &Cube{
		X:       x,
		Y:       y,
		D:       d,
		Weights: weights,
	}
}

// NewCubeFrom wraps existing weights, laid out as (x, y, d), into a cube.
func NewCubeFrom(x, y, d int, weights []float64) (*Cube, error) {
	if x <= 0 || y <= 0 || d <= 0 || len(weights) != x*y*d {
		return nil, NewDimensionMismatch("weight cube", []int{x, y, d}, []int{len(weights)})
	}
	return &Cube{
		X:       x,
		Y:       y,
		D:       d,
		Weights: weights,
	}, nil
}

// Cells returns the number of prototypes in the grid.
func (c *Cube) Cells() int {
	return c.X * c.Y
}

// At returns the prototype of the given cell.
// The vector is a view on the cube, any mutation changes the cube.
func (c *Cube) At(row, col int) xmath.Vector {
	start := (row*c.Y + col) * c.D
	return c.Weights[start : start+c.D : start+c.D]
}

// Prototypes returns the flattened grid of prototypes in row-major order.
// Like At, the vectors are views on the cube.
func (c *Cube) Prototypes() []xmath.Vector {
	protos := make([]xmath.Vector, 0, c.Cells())
	for i := 0; i < c.X; i++ {
		for j := 0; j < c.Y; j++ {
			protos = append(protos, c.At(i, j))
		}
	}
	return protos
}

// Copy creates a deep copy of the cube.
func (c *Cube) Copy() *Cube {
	weights := make([]float64, len(c.Weights))
	copy(weights, c.Weights)
	return &Cube{
		X:       c.X,
		Y:       c.Y,
		D:       c.D,
		Weights: weights,
	}
}
