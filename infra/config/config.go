package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Dir is the directory holding the default configs.
var Dir = "infra/config"

// Load reads the config file at the given path into v.
// Files ending in .json are decoded as json, everything else as yaml.
func Load(path string, v interface{}) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, v)
	default:
		err = yaml.Unmarshal(b, v)
	}
	if err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Msg("loaded config")
	return nil
}

// MustLoad loads the default config for the given key
func MustLoad(key string, v interface{}) {
	p := filepath.Join(Dir, fmt.Sprintf("%s.yaml", key))
	if err := Load(p, v); err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	log.Info().Str("config", key).Msg("loaded default config")
}
