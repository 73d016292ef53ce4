package som

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func settings(decay string) Settings {
	return Settings{
		X:          3,
		Y:          3,
		InputDim:   2,
		Iterations: 10,
		Decay:      decay,
		Parameters: Parameters{
			Alpha:     Values{0.5},
			Sigma:     Values{1},
			MaxRadius: Values{1},
		},
	}
}

func TestSettings_Config(t *testing.T) {

	type test struct {
		settings func() Settings
		decay    Decay
		err      bool
		field    string
	}

	tests := map[string]test{
		"exponential": {
			settings: func() Settings {
				return settings("exponential")
			},
			decay: DecayExponential,
		},
		"default-exponential": {
			settings: func() Settings {
				return settings("")
			},
			decay: DecayExponential,
		},
		"linear": {
			settings: func() Settings {
				return settings("linear")
			},
			decay: DecayLinear,
		},
		"schedule": {
			settings: func() Settings {
				s := settings("schedule")
				s.Parameters = Parameters{
					Time:      []int{5},
					Alpha:     Values{0.5, 0.1},
					Sigma:     Values{2, 1},
					MaxRadius: Values{2, 1},
				}
				return s
			},
			decay: DecaySchedule,
		},
		"schedule-missing-time": {
			settings: func() Settings {
				s := settings("schedule")
				s.Parameters.Time = nil
				return s
			},
			err:   true,
			field: "time",
		},
		"schedule-wrong-phases": {
			settings: func() Settings {
				s := settings("schedule")
				s.Parameters.Time = []int{2, 4}
				return s
			},
			err:   true,
			field: "alpha",
		},
		"missing-alpha": {
			settings: func() Settings {
				s := settings("exponential")
				s.Parameters.Alpha = nil
				return s
			},
			err:   true,
			field: "alpha",
		},
		"missing-sigma": {
			settings: func() Settings {
				s := settings("linear")
				s.Parameters.Sigma = nil
				return s
			},
			err:   true,
			field: "sigma",
		},
		"missing-radius": {
			settings: func() Settings {
				s := settings("exponential")
				s.Parameters.MaxRadius = nil
				return s
			},
			err:   true,
			field: "max_radius",
		},
		"unknown-decay": {
			settings: func() Settings {
				return settings("quadratic")
			},
			err:   true,
			field: "decay",
		},
		"unknown-neighborhood": {
			settings: func() Settings {
				s := settings("exponential")
				s.Neighborhood = "bubble"
				return s
			},
			err:   true,
			field: "neighborhood",
		},
		"unknown-mode": {
			settings: func() Settings {
				s := settings("exponential")
				s.Mode = "mini-batch"
				return s
			},
			err:   true,
			field: "mode",
		},
		"unknown-variant": {
			settings: func() Settings {
				s := settings("exponential")
				s.Variant = "growing"
				return s
			},
			err:   true,
			field: "variant",
		},
		"zero-grid": {
			settings: func() Settings {
				s := settings("exponential")
				s.X = 0
				return s
			},
			err:   true,
			field: "x",
		},
		"negative-alpha": {
			settings: func() Settings {
				s := settings("exponential")
				s.Parameters.Alpha = Values{-1}
				return s
			},
			err:   true,
			field: "learning parameter",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := tt.settings().Config()
			if tt.err {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConfiguration))
				var cerr *ConfigurationError
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, tt.field, cerr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.decay, cfg.Decay.Decay())
			assert.Equal(t, NeighborhoodGeometricSeries, cfg.Neighborhood)
			assert.Equal(t, ModeBatch, cfg.Mode)
			assert.Equal(t, VariantKohonen, cfg.Variant)
		})
	}
}

func TestConfigurationError_Message(t *testing.T) {
	_, err := ParseDecay("quadratic")
	require.Error(t, err)
	assert.Equal(t, "decay 'quadratic' is not supported, choose from [exponential, linear, schedule]", err.Error())

	err = missing("alpha")
	assert.Equal(t, "missing required learning parameter 'alpha'", err.Error())
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Kohonen")
	require.NoError(t, err)
	assert.Equal(t, VariantKohonen, v)

	v, err = ParseVariant("cSOM")
	require.NoError(t, err)
	assert.Equal(t, VariantConscious, v)
}

func TestSettings_Yaml(t *testing.T) {
	doc := `
x: 10
y: 12
input_dim: 3
iterations: 1000
decay: schedule
neighborhood: exponential
mode: online
parameters:
  time: [100, 500]
  alpha: [0.5, 0.25, 0.1]
  sigma: [3, 2, 1]
  max_radius: [4, 2, 1]
`
	var s Settings
	require.NoError(t, yaml.Unmarshal([]byte(doc), &s))
	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.X)
	assert.Equal(t, 12, cfg.Y)
	assert.Equal(t, 3, cfg.D)
	assert.Equal(t, NeighborhoodExponential, cfg.Neighborhood)
	assert.Equal(t, ModeOnline, cfg.Mode)
	assert.Equal(t, State{Alpha: 0.25, Sigma: 2, Radius: 2}, cfg.Decay.At(100, cfg.Iterations))

	scalar := `
alpha: 0.5
sigma: 1
max_radius: 2
`
	var p Parameters
	require.NoError(t, yaml.Unmarshal([]byte(scalar), &p))
	assert.Equal(t, Values{0.5}, p.Alpha)
	assert.Equal(t, Values{2}, p.MaxRadius)
}

func TestSettings_Json(t *testing.T) {
	var p Parameters
	require.NoError(t, json.Unmarshal([]byte(`{"alpha": 0.5, "sigma": [1, 2], "time": [3]}`), &p))
	assert.Equal(t, Values{0.5}, p.Alpha)
	assert.Equal(t, Values{1, 2}, p.Sigma)
	assert.Equal(t, []int{3}, p.Time)

	assert.Error(t, json.Unmarshal([]byte(`{"alpha": "fast"}`), &p))
}
