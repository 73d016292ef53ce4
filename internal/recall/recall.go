package recall

import (
	"fmt"
	"sort"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/drakos74/scisom/internal/buffer"
	"github.com/drakos74/scisom/internal/dataset"
	smath "github.com/drakos74/scisom/internal/math"
	"github.com/drakos74/scisom/internal/metrics"
	"github.com/drakos74/scisom/internal/som"
	"github.com/rs/zerolog/log"
)

// Cell is a position on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Locate returns the best matching cell of each sample.
func Locate(cube *som.Cube, samples []xmath.Vector) ([]Cell, error) {
	if err := checkSamples(cube, samples); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return []Cell{}, nil
	}
	idx, _, err := smath.NearestAll(cube.Prototypes(), samples)
	if err != nil {
		return nil, err
	}
	cells := make([]Cell, len(idx))
	for i, k := range idx {
		row, col := smath.Unravel(k, cube.X, cube.Y)
		cells[i] = Cell{Row: row, Col: col}
	}
	return cells, nil
}

func checkSamples(cube *som.Cube, samples []xmath.Vector) error {
	for _, s := range samples {
		if len(s) != cube.D {
			return som.NewDimensionMismatch("sample", []int{cube.D}, []int{len(s)})
		}
	}
	return nil
}

// Engine assigns population labels to samples based on a trained cube and a reference map of the same grid.
type Engine struct {
	cube       *som.Cube
	ref        *ReferenceMap
	prototypes []xmath.Vector
}

// NewEngine creates a new recall engine.
func NewEngine(cube *som.Cube, ref *ReferenceMap) (*Engine, error) {
	if cube.X != ref.X || cube.Y != ref.Y {
		return nil, som.NewDimensionMismatch("reference map", []int{cube.X, cube.Y}, []int{ref.X, ref.Y})
	}
	return &Engine{
		cube:       cube,
		ref:        ref,
		prototypes: cube.Prototypes(),
	}, nil
}

// Locations returns the best matching cell of each sample.
func (e *Engine) Locations(samples []xmath.Vector) ([]Cell, error) {
	return Locate(e.cube, samples)
}

// Populations returns the label of the best matching cell of each sample.
func (e *Engine) Populations(samples []xmath.Vector) ([]int, error) {
	labels, _, err := e.recall(samples)
	if err != nil {
		return nil, err
	}
	metrics.Observer.Recalled(labels...)
	return labels, nil
}

func (e *Engine) recall(samples []xmath.Vector) ([]int, []float64, error) {
	if err := checkSamples(e.cube, samples); err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return []int{}, []float64{}, nil
	}
	idx, dist, err := smath.NearestAll(e.prototypes, samples)
	if err != nil {
		return nil, nil, fmt.Errorf("could not recall samples: %w", err)
	}
	labels := make([]int, len(idx))
	for i, k := range idx {
		row, col := smath.Unravel(k, e.cube.X, e.cube.Y)
		labels[i] = e.ref.Label(row, col)
	}
	return labels, dist, nil
}

// Classify labels every row of the dataset.
func (e *Engine) Classify(ds *dataset.Dataset) (*dataset.Dataset, error) {
	labels, err := e.Populations(ds.Features)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("rows", ds.Len()).
		Int("populations", len(UniqueLabels(labels))).
		Msg("classified dataset")
	return ds.WithType(labels)
}

// Population summarises the samples assigned to one label.
type Population struct {
	Label       int     `json:"label"`
	Size        int     `json:"size"`
	AvgDistance float64 `json:"avg_distance"`
	MaxDistance float64 `json:"max_distance"`
	Color       *Color  `json:"color,omitempty"`
}

// Summary groups the samples by label.
func (e *Engine) Summary(samples []xmath.Vector) ([]Population, error) {
	labels, dist, err := e.recall(samples)
	if err != nil {
		return nil, err
	}
	stats := make(map[int]*buffer.Stats)
	for i, l := range labels {
		if _, ok := stats[l]; !ok {
			stats[l] = buffer.NewStats()
		}
		stats[l].Push(dist[i])
	}
	pp := make([]Population, 0, len(stats))
	for l, s := range stats {
		p := Population{
			Label:       l,
			Size:        s.Count(),
			AvgDistance: s.Avg(),
			MaxDistance: s.Max(),
		}
		if c, ok := e.ref.Color(l); ok {
			p.Color = &c
		}
		pp = append(pp, p)
	}
	sort.Slice(pp, func(i, j int) bool {
		return pp[i].Label < pp[j].Label
	})
	return pp, nil
}

// UniqueLabels returns the distinct labels in ascending order.
func UniqueLabels(labels []int) []int {
	set := make(map[int]struct{})
	for _, l := range labels {
		set[l] = struct{}{}
	}
	uu := make([]int, 0, len(set))
	for l := range set {
		uu = append(uu, l)
	}
	sort.Ints(uu)
	return uu
}
