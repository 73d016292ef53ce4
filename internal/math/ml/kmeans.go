package ml

import (
	"fmt"

	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"
)

// Cluster groups the given vectors into k clusters with k-means.
// Cluster labels are numbered in order of first appearance, so the first vector always belongs to cluster 0.
func Cluster(data [][]float64, k, iterations int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("invalid number of clusters %d", k)
	}
	if len(data) < k {
		return nil, fmt.Errorf("cannot split %d vectors into %d clusters", len(data), k)
	}
	model := cluster.NewKMeans(k, iterations, data)
	if err := model.Learn(); err != nil {
		log.Error().
			Err(err).
			Int("k", k).
			Int("data", len(data)).
			Msg("error during training on k-means")
		return nil, fmt.Errorf("could not train: %w", err)
	}
	guesses := model.Guesses()
	if len(guesses) != len(data) {
		return nil, fmt.Errorf("could not align guesses with data [ %d | %d ]", len(guesses), len(data))
	}
	return relabel(guesses), nil
}

func relabel(guesses []int) []int {
	index := make(map[int]int)
	labels := make([]int, len(guesses))
	for i, g := range guesses {
		l, ok := index[g]
		if !ok {
			l = len(index)
			index[g] = l
		}
		labels[i] = l
	}
	return labels
}
