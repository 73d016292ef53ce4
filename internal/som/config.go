package som

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decay identifies the policy used to shrink the learning rate and neighborhood over time.
type Decay string

const (
	DecayExponential Decay = "exponential"
	DecayLinear      Decay = "linear"
	DecaySchedule    Decay = "schedule"
)

var decays = []string{string(DecayExponential), string(DecayLinear), string(DecaySchedule)}

// ParseDecay parses a decay policy tag.
func ParseDecay(s string) (Decay, error) {
	v, err := parseTag("decay", s, string(DecayExponential), decays)
	return Decay(v), err
}

// Neighborhood identifies how the update weight falls off around the winning cell.
type Neighborhood string

const (
	NeighborhoodGeometricSeries Neighborhood = "geometric_series"
	NeighborhoodExponential     Neighborhood = "exponential"
	NeighborhoodNone            Neighborhood = "none"
)

var neighborhoods = []string{string(NeighborhoodGeometricSeries), string(NeighborhoodExponential), string(NeighborhoodNone)}

// ParseNeighborhood parses a neighborhood decay tag.
func ParseNeighborhood(s string) (Neighborhood, error) {
	v, err := parseTag("neighborhood", s, string(NeighborhoodGeometricSeries), neighborhoods)
	return Neighborhood(v), err
}

// Mode identifies the order in which samples are presented to the map.
type Mode string

const (
	ModeBatch  Mode = "batch"
	ModeOnline Mode = "online"
)

var modes = []string{string(ModeBatch), string(ModeOnline)}

// ParseMode parses a training mode tag.
func ParseMode(s string) (Mode, error) {
	v, err := parseTag("mode", s, string(ModeBatch), modes)
	return Mode(v), err
}

// Variant identifies the learning algorithm.
type Variant string

const (
	VariantKohonen Variant = "kohonen"
	// VariantConscious is the conscience SOM, accepted by the configuration but not implemented.
	VariantConscious Variant = "conscious"
)

var variants = []string{string(VariantKohonen), string(VariantConscious)}

// ParseVariant parses a som variant tag. The legacy 'cSOM' tag maps to the conscious variant.
func ParseVariant(s string) (Variant, error) {
	if strings.EqualFold(s, "csom") {
		return VariantConscious, nil
	}
	v, err := parseTag("variant", strings.ToLower(s), string(VariantKohonen), variants)
	return Variant(v), err
}

func parseTag(field, value, fallback string, allowed []string) (string, error) {
	if value == "" {
		return fallback, nil
	}
	for _, a := range allowed {
		if a == value {
			return a, nil
		}
	}
	return "", &ConfigurationError{
		Field:   field,
		Value:   value,
		Allowed: allowed,
	}
}

func valid(field, value string, allowed []string) error {
	_, err := parseTag(field, value, "", allowed)
	if err == nil && value == "" {
		return &ConfigurationError{Field: field, Value: value, Allowed: allowed}
	}
	return err
}

// Config is the validated learning configuration of a map.
type Config struct {
	X            int
	Y            int
	D            int
	Iterations   int
	Decay        Policy
	Neighborhood Neighborhood
	Mode         Mode
	Variant      Variant
}

// Validate checks the configuration before any state is touched.
func (c Config) Validate() error {
	if c.X <= 0 {
		return invalid("x", fmt.Sprint(c.X))
	}
	if c.Y <= 0 {
		return invalid("y", fmt.Sprint(c.Y))
	}
	if c.D <= 0 {
		return invalid("input_dim", fmt.Sprint(c.D))
	}
	if c.Iterations <= 0 {
		return invalid("iterations", fmt.Sprint(c.Iterations))
	}
	if c.Decay == nil {
		return missing("decay")
	}
	if err := valid("neighborhood", string(c.Neighborhood), neighborhoods); err != nil {
		return err
	}
	if err := valid("mode", string(c.Mode), modes); err != nil {
		return err
	}
	if err := valid("variant", string(c.Variant), variants); err != nil {
		return err
	}
	return c.Decay.validate()
}

// Values is a list of numbers that can be given in yaml or json either as a single scalar or as a sequence.
type Values []float64

// UnmarshalYAML accepts a scalar or a sequence.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Values{f}
		return nil
	}
	var ff []float64
	if err := node.Decode(&ff); err != nil {
		return err
	}
	*v = ff
	return nil
}

// UnmarshalJSON accepts a number or an array of numbers.
func (v *Values) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Values{f}
		return nil
	}
	var ff []float64
	if err := json.Unmarshal(b, &ff); err != nil {
		return fmt.Errorf("expected number or list of numbers: %w", err)
	}
	*v = ff
	return nil
}

// Parameters is the raw learning parameter record.
// Which fields are required depends on the decay policy.
type Parameters struct {
	Alpha     Values `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Sigma     Values `yaml:"sigma,omitempty" json:"sigma,omitempty"`
	MaxRadius Values `yaml:"max_radius,omitempty" json:"max_radius,omitempty"`
	Time      []int  `yaml:"time,omitempty" json:"time,omitempty"`
}

// Settings is the untyped learning configuration as found in configuration files and flags.
type Settings struct {
	X            int        `yaml:"x" json:"x"`
	Y            int        `yaml:"y" json:"y"`
	InputDim     int        `yaml:"input_dim" json:"input_dim"`
	Iterations   int        `yaml:"iterations" json:"iterations"`
	Decay        string     `yaml:"decay" json:"decay"`
	Neighborhood string     `yaml:"neighborhood" json:"neighborhood"`
	Variant      string     `yaml:"variant" json:"variant"`
	Mode         string     `yaml:"mode" json:"mode"`
	Parameters   Parameters `yaml:"parameters" json:"parameters"`
}

// Config validates the settings into a Config.
func (s Settings) Config() (Config, error) {
	decay, err := ParseDecay(s.Decay)
	if err != nil {
		return Config{}, err
	}
	neighborhood, err := ParseNeighborhood(s.Neighborhood)
	if err != nil {
		return Config{}, err
	}
	mode, err := ParseMode(s.Mode)
	if err != nil {
		return Config{}, err
	}
	variant, err := ParseVariant(s.Variant)
	if err != nil {
		return Config{}, err
	}
	policy, err := s.Parameters.policy(decay)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		X:            s.X,
		Y:            s.Y,
		D:            s.InputDim,
		Iterations:   s.Iterations,
		Decay:        policy,
		Neighborhood: neighborhood,
		Mode:         mode,
		Variant:      variant,
	}
	return cfg, cfg.Validate()
}

func (p Parameters) policy(decay Decay) (Policy, error) {
	if len(p.Alpha) == 0 {
		return nil, missing("alpha")
	}
	if len(p.Sigma) == 0 {
		return nil, missing("sigma")
	}
	if len(p.MaxRadius) == 0 {
		return nil, missing("max_radius")
	}
	switch decay {
	case DecayExponential, DecayLinear:
		alpha, err := single("alpha", p.Alpha)
		if err != nil {
			return nil, err
		}
		sigma, err := single("sigma", p.Sigma)
		if err != nil {
			return nil, err
		}
		radius, err := single("max_radius", p.MaxRadius)
		if err != nil {
			return nil, err
		}
		if decay == DecayLinear {
			return LinearDecay{Alpha: alpha, Sigma: sigma, MaxRadius: radius}, nil
		}
		return ExponentialDecay{Alpha: alpha, Sigma: sigma, MaxRadius: radius}, nil
	case DecaySchedule:
		if len(p.Time) == 0 {
			return nil, missing("time")
		}
		return ScheduledDecay{
			Time:   p.Time,
			Alpha:  p.Alpha,
			Sigma:  toInt(p.Sigma),
			Radius: toInt(p.MaxRadius),
		}, nil
	}
	return nil, &ConfigurationError{Field: "decay", Value: string(decay), Allowed: decays}
}

func single(field string, v Values) (float64, error) {
	if len(v) != 1 {
		return 0, invalid(field, fmt.Sprint([]float64(v)))
	}
	return v[0], nil
}

func toInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(f)
	}
	return ii
}
