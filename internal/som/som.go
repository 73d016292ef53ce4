package som

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/drakos74/go-ex-machina/xmath"
	smath "github.com/drakos74/scisom/internal/math"
	"github.com/drakos74/scisom/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Status is the lifecycle state of a map.
type Status int

const (
	Untrained Status = iota
	Training
	Trained
)

func (s Status) String() string {
	switch s {
	case Untrained:
		return "untrained"
	case Training:
		return "training"
	case Trained:
		return "trained"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// History records the learning parameters used at each iteration of the last run.
type History struct {
	LearningRate []float64 `json:"learning_rate"`
	Radius       []int     `json:"radius"`
	Sigma        []int     `json:"sigma"`
}

func newHistory(n int) History {
	return History{
		LearningRate: make([]float64, n),
		Radius:       make([]int, n),
		Sigma:        make([]int, n),
	}
}

func (h History) record(i int, s State) {
	h.LearningRate[i] = s.Alpha
	h.Radius[i] = s.Radius
	h.Sigma[i] = s.Sigma
}

// SOM is a self-organizing map.
// It owns its weight cube. Train must not be called concurrently, and the cube must not be read
// while a training run is in progress.
type SOM struct {
	config  Config
	cube    *Cube
	rng     *rand.Rand
	status  Status
	history History
	run     uuid.UUID
	qe      float64
}

// Option customises a new SOM.
type Option func(s *SOM)

// WithRand sets the random source for the weight initialisation and the sample order.
func WithRand(rng *rand.Rand) Option {
	return func(s *SOM) {
		s.rng = rng
	}
}

// WithCube starts from an existing weight cube instead of random weights.
func WithCube(cube *Cube) Option {
	return func(s *SOM) {
		s.cube = cube
	}
}

// New creates a new SOM for the given configuration.
func New(cfg Config, opts ...Option) (*SOM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("could not create som: %w", err)
	}
	s := &SOM{
		config:  cfg,
		history: newHistory(cfg.Iterations),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.cube == nil {
		s.cube = NewCube(cfg.X, cfg.Y, cfg.D, s.rng)
	} else if s.cube.X != cfg.X || s.cube.Y != cfg.Y || s.cube.D != cfg.D {
		return nil, NewDimensionMismatch("weight cube", []int{cfg.X, cfg.Y, cfg.D}, []int{s.cube.X, s.cube.Y, s.cube.D})
	}
	return s, nil
}

// Train runs the full training loop over the given samples, mutating the weight cube.
// A second call re-runs the loop from the current weights and overwrites the history.
// The context is only checked between iterations; an interrupted run leaves the cube partially
// updated and the map untrained.
func (s *SOM) Train(ctx context.Context, samples []xmath.Vector) error {
	if len(samples) == 0 {
		return fmt.Errorf("could not train: %w", ErrEmptySampleSet)
	}
	for i, sample := range samples {
		if len(sample) != s.config.D {
			return fmt.Errorf("could not train on sample %d: %w", i, NewDimensionMismatch("sample", []int{s.config.D}, []int{len(sample)}))
		}
	}
	if s.config.Variant != VariantKohonen {
		return fmt.Errorf("could not train '%s' variant: %w", s.config.Variant, ErrNotImplemented)
	}

	n := s.config.Iterations
	plan, err := s.config.Mode.Plan(s.rng, n, len(samples))
	if err != nil {
		return fmt.Errorf("could not plan epoch: %w", err)
	}

	s.run = uuid.New()
	s.history = newHistory(n)
	s.qe = 0
	s.status = Training
	start := time.Now()

	log.Info().
		Str("run", s.run.String()).
		Str("decay", string(s.config.Decay.Decay())).
		Str("neighborhood", string(s.config.Neighborhood)).
		Str("mode", string(s.config.Mode)).
		Int("x", s.config.X).
		Int("y", s.config.Y).
		Int("iterations", n).
		Int("samples", len(samples)).
		Msg("start training")

	prototypes := s.cube.Prototypes()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			s.status = Untrained
			log.Warn().
				Str("run", s.run.String()).
				Int("iteration", i).
				Msg("training interrupted")
			return fmt.Errorf("training interrupted at iteration %d: %w", i, err)
		}
		if err := s.step(i, prototypes, samples[plan[i]]); err != nil {
			s.status = Untrained
			return fmt.Errorf("could not complete iteration %d: %w", i, err)
		}
	}
	s.status = Trained

	qe, err := s.QuantizationError(samples)
	if err != nil {
		return fmt.Errorf("could not evaluate trained map: %w", err)
	}
	s.qe = qe
	duration := time.Since(start)
	metrics.Observer.Trained(string(s.config.Decay.Decay()), string(s.config.Mode), n, duration, qe)

	log.Info().
		Str("run", s.run.String()).
		Float64("quantization-error", qe).
		Dur("duration", duration).
		Msg("training completed")
	return nil
}

// step applies one kohonen update for the given sample.
func (s *SOM) step(i int, prototypes []xmath.Vector, sample xmath.Vector) error {
	idx, _, err := smath.Nearest(prototypes, sample)
	if err != nil {
		return err
	}
	row, col := smath.Unravel(idx, s.config.X, s.config.Y)

	state := s.config.Decay.At(i, s.config.Iterations)
	s.history.record(i, state)

	field, window := s.config.Neighborhood.Field(row, col, state.Radius, s.config.X, s.config.Y)
	for r := window.XMin; r <= window.XMax; r++ {
		for c := window.YMin; c <= window.YMax; c++ {
			w := s.cube.At(r, c)
			delta := sample.Diff(w).Mult(state.Alpha * field.At(r, c))
			for k := range w {
				w[k] += delta[k]
			}
		}
	}

	log.Trace().
		Int("iteration", i).
		Int("row", row).
		Int("col", col).
		Float64("alpha", state.Alpha).
		Int("radius", state.Radius).
		Msg("update")
	return nil
}

// QuantizationError is the average distance of the samples to their best matching unit.
func (s *SOM) QuantizationError(samples []xmath.Vector) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySampleSet
	}
	_, distances, err := smath.NearestAll(s.cube.Prototypes(), samples)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, d := range distances {
		sum += d
	}
	return sum / float64(len(distances)), nil
}

// TrainingError returns the quantization error over the training samples at the end of the last run.
func (s *SOM) TrainingError() float64 {
	return s.qe
}

// Cube returns the weight cube of the map.
// It must be treated as read-only.
func (s *SOM) Cube() *Cube {
	return s.cube
}

// History returns the learning parameters recorded during the last run.
func (s *SOM) History() History {
	return s.history
}

// Status returns the lifecycle state of the map.
func (s *SOM) Status() Status {
	return s.status
}

// Run returns the id of the last training run.
func (s *SOM) Run() uuid.UUID {
	return s.run
}

// Config returns the configuration of the map.
func (s *SOM) Config() Config {
	return s.config
}
