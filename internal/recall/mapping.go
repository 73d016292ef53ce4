package recall

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/evaluation"
)

var (
	// ErrLengthMismatch is returned when paired label lists differ in length.
	ErrLengthMismatch = errors.New("label lists have different lengths")
	// ErrInconsistentMapping is returned when one output label is paired with more than one dataset label.
	ErrInconsistentMapping = errors.New("output label maps to more than one dataset label")
	// ErrUnmappedLabel is returned when applying a mapping to an unknown output label.
	ErrUnmappedLabel = errors.New("output label is not mapped")
)

// Mapping translates recalled population labels to dataset class labels.
type Mapping map[int]int

// NewMapping pairs each output label with the dataset label at the same position.
func NewMapping(output, dataset []int) (Mapping, error) {
	if len(output) != len(dataset) {
		return nil, fmt.Errorf("%w: %d output vs %d dataset labels", ErrLengthMismatch, len(output), len(dataset))
	}
	m := make(Mapping)
	for i, o := range output {
		if d, ok := m[o]; ok && d != dataset[i] {
			return nil, fmt.Errorf("%w: %d -> [%d, %d] at position %d", ErrInconsistentMapping, o, d, dataset[i], i)
		}
		m[o] = dataset[i]
	}
	return m, nil
}

// Apply translates the output labels.
func (m Mapping) Apply(output []int) ([]int, error) {
	mapped := make([]int, len(output))
	for i, o := range output {
		d, ok := m[o]
		if !ok {
			return nil, fmt.Errorf("%w: %d at position %d", ErrUnmappedLabel, o, i)
		}
		mapped[i] = d
	}
	return mapped, nil
}

// Evaluate compares predicted to expected labels
// and returns the confusion matrix keyed by expected and then predicted label, along with the accuracy.
func Evaluate(predicted, expected []int) (evaluation.ConfusionMatrix, float64, error) {
	if len(predicted) != len(expected) {
		return nil, 0, fmt.Errorf("%w: %d predicted vs %d expected labels", ErrLengthMismatch, len(predicted), len(expected))
	}
	cf := make(evaluation.ConfusionMatrix)
	for i, e := range expected {
		ref := strconv.Itoa(e)
		if _, ok := cf[ref]; !ok {
			cf[ref] = make(map[string]int)
		}
		cf[ref][strconv.Itoa(predicted[i])]++
	}
	accuracy := evaluation.GetAccuracy(cf)
	log.Debug().
		Int("samples", len(expected)).
		Float64("accuracy", accuracy).
		Msg("evaluated recall")
	return cf, accuracy, nil
}
