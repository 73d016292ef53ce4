package math

import (
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distance returns the euclidean distance of the two vectors.
func Distance(a, b xmath.Vector) float64 {
	return floats.Distance(a, b, 2)
}

// Nearest returns the index of the prototype closest to the query and the corresponding distance.
// Ties resolve to the lowest index.
func Nearest(prototypes []xmath.Vector, query xmath.Vector) (int, float64, error) {
	if len(prototypes) == 0 {
		return -1, 0, fmt.Errorf("no prototypes to search")
	}
	distances := make([]float64, len(prototypes))
	for i, p := range prototypes {
		if len(p) != len(query) {
			return -1, 0, fmt.Errorf("query of size %d does not match prototype %d of size %d", len(query), i, len(p))
		}
		distances[i] = Distance(p, query)
	}
	idx := floats.MinIdx(distances)
	return idx, distances[idx], nil
}

// DistanceMatrix computes all pairwise distances between prototypes (rows) and queries (columns).
func DistanceMatrix(prototypes []xmath.Vector, queries []xmath.Vector) (*mat.Dense, error) {
	if len(prototypes) == 0 || len(queries) == 0 {
		return nil, fmt.Errorf("cannot compute distances for %d prototypes and %d queries", len(prototypes), len(queries))
	}
	d := mat.NewDense(len(prototypes), len(queries), nil)
	for j, q := range queries {
		for i, p := range prototypes {
			if len(p) != len(q) {
				return nil, fmt.Errorf("query %d of size %d does not match prototype %d of size %d", j, len(q), i, len(p))
			}
			d.Set(i, j, Distance(p, q))
		}
	}
	return d, nil
}

// NearestAll returns for each query the index of the closest prototype and the corresponding distance.
// It follows the same metric and tie rule as Nearest.
func NearestAll(prototypes []xmath.Vector, queries []xmath.Vector) ([]int, []float64, error) {
	d, err := DistanceMatrix(prototypes, queries)
	if err != nil {
		return nil, nil, err
	}
	indexes := make([]int, len(queries))
	distances := make([]float64, len(queries))
	col := make([]float64, len(prototypes))
	for j := range queries {
		col = mat.Col(col, j, d)
		idx := floats.MinIdx(col)
		indexes[j] = idx
		distances[j] = col[idx]
	}
	return indexes, distances, nil
}

// Unravel converts a flat index into grid coordinates for a row-major grid of x rows and y columns.
func Unravel(index, x, y int) (row, col int) {
	return index / y, index % y
}

// Ravel converts grid coordinates into the flat row-major index.
func Ravel(row, col, y int) int {
	return row*y + col
}
