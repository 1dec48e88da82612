package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"forest-fire/internal/sims/forest"
)

// Collector accumulates census densities over a run.
type Collector struct {
	treeDensity []float64
	fireDensity []float64
	last        Record
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record adds the census of snap to the collector.
func (c *Collector) Record(snap forest.Snapshot) error {
	r := FromSnapshot(snap)
	c.treeDensity = append(c.treeDensity, r.TreeDensity)
	c.fireDensity = append(c.fireDensity, r.FireDensity)
	c.last = r
	return nil
}

// Summary aggregates a run.
type Summary struct {
	Generations     int
	MeanTreeDensity float64
	StdTreeDensity  float64
	MedianTree      float64
	MeanFireDensity float64
	PeakFireDensity float64
	Final           Record
}

// Summary computes statistics over every recorded generation.
func (c *Collector) Summary() Summary {
	n := len(c.treeDensity)
	if n == 0 {
		return Summary{}
	}
	s := Summary{Generations: n, Final: c.last}
	s.MeanTreeDensity, s.StdTreeDensity = stat.MeanStdDev(c.treeDensity, nil)
	if n == 1 {
		s.StdTreeDensity = 0
	}
	sorted := make([]float64, n)
	copy(sorted, c.treeDensity)
	sort.Float64s(sorted)
	s.MedianTree = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.MeanFireDensity = stat.Mean(c.fireDensity, nil)
	s.PeakFireDensity = floats.Max(c.fireDensity)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Float64("tree_mean", s.MeanTreeDensity),
		slog.Float64("tree_std", s.StdTreeDensity),
		slog.Float64("tree_median", s.MedianTree),
		slog.Float64("fire_mean", s.MeanFireDensity),
		slog.Float64("fire_peak", s.PeakFireDensity),
		slog.Any("final", s.Final),
	)
}
