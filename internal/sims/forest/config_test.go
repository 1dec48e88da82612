package forest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigFromEmbeddedYAML(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 64 || c.Height != 32 || c.Seed != 1337 {
		t.Fatalf("unexpected world defaults %+v", c)
	}
	want := Params{InitialTreeProb: 0.5, GrowProb: 0.01, FireProb: 0.0005}
	if c.Params != want {
		t.Fatalf("params = %+v, want %+v", c.Params, want)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults failed validation: %v", err)
	}
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")
	data := []byte("width: 10\nparams:\n  fire_prob: 0.25\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 10 || c.Params.FireProb != 0.25 {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Height != 32 || c.Params.GrowProb != 0.01 {
		t.Fatalf("defaults lost for fields absent from file: %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestWriteYAMLLoadsBack(t *testing.T) {
	c := DefaultConfig()
	c.Width = 7
	c.Params.GrowProb = 0.125
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := c.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded != c {
		t.Fatalf("loaded %+v, want %+v", loaded, c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"grow above one", func(c *Config) { c.Params.GrowProb = 1.5 }, false},
		{"negative fire", func(c *Config) { c.Params.FireProb = -0.1 }, false},
		{"certain ignition", func(c *Config) { c.Params.FireProb = 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "20",
		"h":         "-4",
		"seed":      "7",
		"grow_prob": "0.2",
		"fire_prob": "2",
	})
	if c.Width != 20 || c.Seed != 7 || c.Params.GrowProb != 0.2 {
		t.Fatalf("valid overrides not applied: %+v", c)
	}
	if c.Height != 32 || c.Params.FireProb != 0.0005 {
		t.Fatalf("invalid overrides should be ignored: %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}
