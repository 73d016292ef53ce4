package som

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration matches any *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrDimensionMismatch matches any *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNotImplemented marks variants that exist in the configuration surface but have no behaviour.
	ErrNotImplemented = errors.New("not implemented")
	// ErrEmptySampleSet is returned when training or recall is given no samples.
	ErrEmptySampleSet = errors.New("empty sample set")
)

// ConfigurationError reports an unknown policy tag or a missing learning parameter.
type ConfigurationError struct {
	Field   string
	Value   string
	Allowed []string
	Missing bool
}

func (e *ConfigurationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing required learning parameter '%s'", e.Field)
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s '%s'", e.Field, e.Value)
	}
	return fmt.Sprintf("%s '%s' is not supported, choose from [%s]", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Is allows errors.Is(err, ErrConfiguration).
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func missing(field string) *ConfigurationError {
	return &ConfigurationError{Field: field, Missing: true}
}

func invalid(field, value string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value}
}

// DimensionMismatchError reports disagreeing extents, e.g. sample size vs weight cube depth.
type DimensionMismatchError struct {
	What     string
	Expected []int
	Actual   []int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch for %s: expected %v, got %v", e.What, e.Expected, e.Actual)
}

// Is allows errors.Is(err, ErrDimensionMismatch).
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// NewDimensionMismatch creates a new dimension mismatch error.
func NewDimensionMismatch(what string, expected, actual []int) *DimensionMismatchError {
	return &DimensionMismatchError{
		What:     what,
		Expected: expected,
		Actual:   actual,
	}
}
