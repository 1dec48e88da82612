// Package telemetry records per-generation census data and run summaries.
package telemetry

import (
	"log/slog"

	"forest-fire/internal/sims/forest"
)

// Record is one generation's census row.
type Record struct {
	Generation  int     `csv:"generation"`
	Empty       int     `csv:"empty"`
	Tree        int     `csv:"tree"`
	Heating     int     `csv:"heating"`
	Burning     int     `csv:"burning"`
	TreeDensity float64 `csv:"tree_density"`
	FireDensity float64 `csv:"fire_density"`
}

// FromSnapshot tallies a snapshot into a Record.
func FromSnapshot(snap forest.Snapshot) Record {
	c := snap.Census()
	r := Record{
		Generation: snap.Generation,
		Empty:      c.Empty,
		Tree:       c.Tree,
		Heating:    c.Heating,
		Burning:    c.Burning,
	}
	if total := c.Total(); total > 0 {
		r.TreeDensity = float64(c.Tree) / float64(total)
		r.FireDensity = float64(c.Burning+c.Heating) / float64(total)
	}
	return r
}

// LogValue implements slog.LogValuer for structured logging.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", r.Generation),
		slog.Int("empty", r.Empty),
		slog.Int("tree", r.Tree),
		slog.Int("heating", r.Heating),
		slog.Int("burning", r.Burning),
		slog.Float64("tree_density", r.TreeDensity),
	)
}
