package forest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid forest config")

// Params holds the fixed probabilities driving the automaton.
type Params struct {
	InitialTreeProb float64 `yaml:"initial_tree_prob"`
	GrowProb        float64 `yaml:"grow_prob"`
	FireProb        float64 `yaml:"fire_prob"`
}

// Config controls the forest dimensions, seed and rule probabilities.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the configuration embedded in defaults.yaml.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("forest: parsing embedded defaults: %v", err))
	}
	return c
}

// LoadConfig reads a YAML file on top of the embedded defaults. Fields absent
// from the file keep their default value. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config file: %w", err)
	}
	return c, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate rejects empty grids and probabilities outside [0, 1].
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	probs := []struct {
		name string
		v    float64
	}{
		{"initial_tree_prob", c.Params.InitialTreeProb},
		{"grow_prob", c.Params.GrowProb},
		{"fire_prob", c.Params.FireProb},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrInvalidConfig, p.name, p.v)
		}
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c from flag-style key/value pairs.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setProb(cfg, "initial_tree_prob", &c.Params.InitialTreeProb)
	setProb(cfg, "grow_prob", &c.Params.GrowProb)
	setProb(cfg, "fire_prob", &c.Params.FireProb)
	return c
}

func setProb(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
		*dst = parsed
	}
}
