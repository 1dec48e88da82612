// Package runner drives a forest simulation one generation at a time.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"forest-fire/internal/sims/forest"
)

// ErrNoSimulator is returned by Run when no simulator was supplied.
var ErrNoSimulator = errors.New("runner: nil simulator")

// Renderer draws a generation.
type Renderer interface {
	Render(forest.Snapshot) error
}

// Recorder observes every generation after it has been rendered.
type Recorder interface {
	Record(forest.Snapshot) error
}

// Pacer blocks between generations.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Options configures a Runner. Renderer and Pacer may be nil for headless runs.
type Options struct {
	Renderer       Renderer
	Pacer          Pacer
	Recorders      []Recorder
	MaxGenerations int // 0 = unlimited
	Logger         *slog.Logger
}

// Runner steps a simulator serially: each generation is fully computed
// before it is rendered and before the next one starts.
type Runner struct {
	sim  *forest.Simulator
	opts Options
	log  *slog.Logger
}

// New constructs a Runner for sim.
func New(sim *forest.Simulator, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{sim: sim, opts: opts, log: logger}
}

// Run emits the current generation and then steps until the generation
// limit is reached or ctx is cancelled. Cancellation is a clean stop.
func (r *Runner) Run(ctx context.Context) error {
	if r.sim == nil {
		return ErrNoSimulator
	}
	snap := r.sim.Snapshot()
	if err := r.emit(snap); err != nil {
		return err
	}
	for {
		if r.opts.MaxGenerations > 0 && snap.Generation >= r.opts.MaxGenerations {
			r.log.Debug("generation limit reached", "generation", snap.Generation)
			return nil
		}
		if err := r.wait(ctx); err != nil {
			if ctx.Err() != nil {
				r.log.Debug("run cancelled", "generation", snap.Generation)
				return nil
			}
			return fmt.Errorf("pacing generation %d: %w", snap.Generation+1, err)
		}
		snap = r.sim.Step()
		if err := r.emit(snap); err != nil {
			return err
		}
	}
}

func (r *Runner) wait(ctx context.Context) error {
	if r.opts.Pacer == nil {
		return ctx.Err()
	}
	return r.opts.Pacer.Wait(ctx)
}

func (r *Runner) emit(snap forest.Snapshot) error {
	if r.opts.Renderer != nil {
		if err := r.opts.Renderer.Render(snap); err != nil {
			return fmt.Errorf("rendering generation %d: %w", snap.Generation, err)
		}
	}
	for _, rec := range r.opts.Recorders {
		if err := rec.Record(snap); err != nil {
			return fmt.Errorf("recording generation %d: %w", snap.Generation, err)
		}
	}
	return nil
}
