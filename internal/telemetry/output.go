package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"forest-fire/internal/sims/forest"
)

// OutputManager writes the census of every generation to census.csv and a
// copy of the effective configuration to config.yaml.
type OutputManager struct {
	dir        string
	censusFile *os.File

	censusHeaderWritten bool
}

// NewOutputManager creates the output directory and census file.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "census.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating census.csv: %w", err)
	}
	return &OutputManager{dir: dir, censusFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the configuration as YAML.
func (om *OutputManager) WriteConfig(cfg forest.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// Record appends the census of snap to census.csv.
func (om *OutputManager) Record(snap forest.Snapshot) error {
	if om == nil {
		return nil
	}
	records := []Record{FromSnapshot(snap)}
	if !om.censusHeaderWritten {
		if err := gocsv.Marshal(records, om.censusFile); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		om.censusHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.censusFile); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// Close flushes and closes the census file.
func (om *OutputManager) Close() error {
	if om == nil || om.censusFile == nil {
		return nil
	}
	err := om.censusFile.Close()
	om.censusFile = nil
	return err
}
