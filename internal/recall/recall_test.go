package recall

import (
	"errors"
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/drakos74/scisom/internal/dataset"
	"github.com/drakos74/scisom/internal/som"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCube creates a 3x3 cube with (0,0) at the origin, (2,2) at [1,1] and every other cell far away.
func newCube(t *testing.T) *som.Cube {
	weights := make([]float64, 0, 18)
	for i := 0; i < 9; i++ {
		switch i {
		case 0:
			weights = append(weights, 0, 0)
		case 8:
			weights = append(weights, 1, 1)
		default:
			weights = append(weights, -10, -10)
		}
	}
	cube, err := som.NewCubeFrom(3, 3, 2, weights)
	require.NoError(t, err)
	return cube
}

func newReference(t *testing.T) *ReferenceMap {
	pixels := []Color{
		red, white, white,
		white, white, white,
		white, white, blue,
	}
	img, err := NewImage(3, 3, pixels)
	require.NoError(t, err)
	return NewReferenceMap(img)
}

func labelOf(t *testing.T, ref *ReferenceMap, c Color) int {
	for l, cc := range ref.Colors {
		if cc == c {
			return l
		}
	}
	require.Fail(t, "color not found", "%v", c)
	return -1
}

func TestEngine_Populations(t *testing.T) {
	ref := newReference(t)
	engine, err := NewEngine(newCube(t), ref)
	require.NoError(t, err)

	labels, err := engine.Populations([]xmath.Vector{{0.9, 0.9}, {0.1, 0.2}})
	require.NoError(t, err)
	assert.Equal(t, []int{labelOf(t, ref, blue), labelOf(t, ref, red)}, labels)

	locations, err := engine.Locations([]xmath.Vector{{0.9, 0.9}, {0.1, 0.2}})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{Row: 2, Col: 2}, {Row: 0, Col: 0}}, locations)

	labels, err = engine.Populations(nil)
	require.NoError(t, err)
	assert.Empty(t, labels)

	locations, err = engine.Locations(nil)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestEngine_Classify(t *testing.T) {
	ref := newReference(t)
	engine, err := NewEngine(newCube(t), ref)
	require.NoError(t, err)

	ds, err := dataset.New([]string{"x", "y"}, []xmath.Vector{{0.9, 0.9}, {0, 0.1}, {1, 1}})
	require.NoError(t, err)
	ds.Type = []int{7, 7, 7}

	classified, err := engine.Classify(ds)
	require.NoError(t, err)
	b := labelOf(t, ref, blue)
	assert.Equal(t, []int{b, labelOf(t, ref, red), b}, classified.Type)
	// the input dataset is left untouched
	assert.Equal(t, []int{7, 7, 7}, ds.Type)
}

func TestEngine_Summary(t *testing.T) {
	ref := newReference(t)
	engine, err := NewEngine(newCube(t), ref)
	require.NoError(t, err)

	pp, err := engine.Summary([]xmath.Vector{{1, 1}, {0.5, 1}, {0, 0}})
	require.NoError(t, err)
	require.Len(t, pp, 2)

	blueLabel := labelOf(t, ref, blue)
	for _, p := range pp {
		require.NotNil(t, p.Color)
		if p.Label == blueLabel {
			assert.Equal(t, 2, p.Size)
			assert.InDelta(t, 0.25, p.AvgDistance, 1e-12)
			assert.InDelta(t, 0.5, p.MaxDistance, 1e-12)
			assert.Equal(t, blue, *p.Color)
		} else {
			assert.Equal(t, 1, p.Size)
			assert.Equal(t, 0.0, p.AvgDistance)
		}
	}
	assert.True(t, pp[0].Label < pp[1].Label)
}

func TestEngine_Errors(t *testing.T) {
	ref, err := ReferenceMapFromLabels(2, 2, []int{0, 0, 1, 1})
	require.NoError(t, err)
	_, err = NewEngine(newCube(t), ref)
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)
	var derr *som.DimensionMismatchError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, []int{3, 3}, derr.Expected)
	assert.Equal(t, []int{2, 2}, derr.Actual)

	engine, err := NewEngine(newCube(t), newReference(t))
	require.NoError(t, err)
	_, err = engine.Populations([]xmath.Vector{{1, 1, 1}})
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)

	_, err = Locate(newCube(t), []xmath.Vector{{1}})
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)
}

func TestUniqueLabels(t *testing.T) {
	assert.Equal(t, []int{0, 2, 5}, UniqueLabels([]int{5, 0, 2, 2, 0}))
	assert.Empty(t, UniqueLabels(nil))
}
