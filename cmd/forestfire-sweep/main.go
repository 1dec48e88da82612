package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"

	"forest-fire/internal/runner"
	"forest-fire/internal/sims/forest"
	"forest-fire/internal/telemetry"
)

type paramSet struct {
	fireProb float64
	growProb float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("fire=%.5f grow=%.3f", p.fireProb, p.growProb)
}

type scenarioResult struct {
	params  paramSet
	summary telemetry.Summary
	err     error
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 128, "grid height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	flag.Parse()

	baseCfg := forest.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Seed = *seed
	if err := baseCfg.Validate(); err != nil {
		slog.Error("invalid sweep grid", "error", err)
		os.Exit(1)
	}

	fireOptions := []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005}
	growOptions := []float64{0.001, 0.005, 0.01, 0.05, 0.1}

	var sets []paramSet
	for _, fire := range fireOptions {
		for _, grow := range growOptions {
			sets = append(sets, paramSet{fireProb: fire, growProb: grow})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	bar := pb.New(len(sets)).SetWriter(os.Stderr).Start()
	var all []scenarioResult
	for res := range results {
		bar.Increment()
		if res.err != nil {
			slog.Warn("scenario failed", "params", res.params.String(), "error", res.err)
			continue
		}
		all = append(all, res)
	}
	bar.Finish()

	sort.Slice(all, func(i, j int) bool {
		return all[i].summary.MeanTreeDensity > all[j].summary.MeanTreeDensity
	})
	elapsed := time.Since(start)

	fmt.Printf("\nResults by mean tree density (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		s := res.summary
		fmt.Printf("%2d) %s trees=%.3f±%.3f median=%.3f fire=%.4f peakFire=%.4f\n",
			i+1, res.params, s.MeanTreeDensity, s.StdTreeDensity, s.MedianTree, s.MeanFireDensity, s.PeakFireDensity)
	}
}

func runScenario(base forest.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Params.FireProb = params.fireProb
	cfg.Params.GrowProb = params.growProb

	sim := forest.New(cfg)
	sim.Reset(cfg.Seed)

	collector := telemetry.NewCollector()
	err := runner.New(sim, runner.Options{
		Recorders:      []runner.Recorder{collector},
		MaxGenerations: steps,
	}).Run(context.Background())
	return scenarioResult{params: params, summary: collector.Summary(), err: err}
}
