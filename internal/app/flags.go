package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"forest-fire/internal/sims/forest"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath  string
	Seed        int64
	Overrides   map[string]string
	Delay       time.Duration
	Generations int
	Headless    bool
	OutputDir   string
	LogLevel    string
	Scale       int
	TPS         int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Overrides: map[string]string{},
		Delay:     100 * time.Millisecond,
		LogLevel:  "info",
		Scale:     8,
		TPS:       60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to forest YAML config (empty = embedded defaults)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the forest (0 = config seed)")
	fs.Func("set", "override a forest parameter, key=value (w, h, seed, initial_tree_prob, grow_prob, fire_prob); repeatable", c.setOverride)
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.IntVar(&c.Generations, "gens", c.Generations, "stop after N generations (0 = unlimited)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without drawing, as fast as possible")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "directory for census.csv and config.yaml")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second (GUI)")
}

func (c *Config) setOverride(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	if c.Overrides == nil {
		c.Overrides = map[string]string{}
	}
	c.Overrides[key] = value
	return nil
}

// Forest loads the forest configuration, applies command-line overrides and
// validates the result.
func (c *Config) Forest() (forest.Config, error) {
	cfg, err := forest.LoadConfig(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	cfg = forest.ApplyMap(cfg, c.Overrides)
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parsing log level: %w", err)
	}
	return lvl, nil
}
