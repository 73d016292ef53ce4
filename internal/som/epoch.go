package som

import (
	"fmt"
	"math/rand"
)

// Plan returns the sequence of n sample indexes to present during a training run over a set of the given size.
//
// In batch mode the run is split into consecutive blocks, each a random permutation of all samples,
// and a trailing partial block sampled without replacement.
// In online mode each index is drawn independently with replacement.
func (m Mode) Plan(rng *rand.Rand, n, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cannot plan %d iterations: %w", n, ErrEmptySampleSet)
	}
	plan := make([]int, 0, n)
	switch m {
	case ModeBatch:
		for len(plan) < n {
			block := rng.Perm(size)
			if remainder := n - len(plan); remainder < size {
				block = block[:remainder]
			}
			plan = append(plan, block...)
		}
	case ModeOnline:
		for i := 0; i < n; i++ {
			plan = append(plan, rng.Intn(size))
		}
	default:
		return nil, &ConfigurationError{Field: "mode", Value: string(m), Allowed: modes}
	}
	return plan, nil
}
