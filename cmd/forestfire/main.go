package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheggaaa/pb/v3"

	"forest-fire/internal/app"
	"forest-fire/internal/core"
	"forest-fire/internal/runner"
	"forest-fire/internal/sims/forest"
	"forest-fire/internal/telemetry"
	"forest-fire/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("forestfire failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	fcfg, err := cfg.Forest()
	if err != nil {
		return err
	}
	if cfg.Headless && cfg.Generations <= 0 {
		return errors.New("headless mode needs a generation limit (-gens)")
	}

	sim := forest.New(fcfg)
	sim.Reset(fcfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := telemetry.NewCollector()
	opts := runner.Options{
		Recorders:      []runner.Recorder{collector},
		MaxGenerations: cfg.Generations,
	}

	out, err := telemetry.NewOutputManager(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer out.Close()
	if out != nil {
		if err := out.WriteConfig(fcfg); err != nil {
			return err
		}
		opts.Recorders = append(opts.Recorders, out)
	}

	if cfg.Headless {
		err = runHeadless(ctx, sim, opts, cfg)
	} else {
		err = runTerminal(ctx, sim, opts, cfg)
	}
	if err != nil {
		return err
	}

	slog.Info("simulation finished",
		"seed", fcfg.Seed,
		"generation", sim.Generation(),
		"output_dir", out.Dir(),
		"summary", collector.Summary(),
	)
	return nil
}

func runHeadless(ctx context.Context, sim *forest.Simulator, opts runner.Options, cfg *app.Config) error {
	slog.Info("starting headless simulation",
		"size", sim.Size(),
		"generations", cfg.Generations,
		"params", sim.Config().Params,
	)
	bar := pb.New(cfg.Generations).SetWriter(os.Stderr).Start()
	defer bar.Finish()
	opts.Recorders = append(opts.Recorders, progress{bar})
	return runner.New(sim, opts).Run(ctx)
}

func runTerminal(ctx context.Context, sim *forest.Simulator, opts runner.Options, cfg *app.Config) error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go screen.Watch(ctx, cancel)

	opts.Renderer = screen
	opts.Pacer = core.NewPacer(cfg.Delay)
	err = runner.New(sim, opts).Run(ctx)
	screen.Close()
	return err
}

// progress advances a progress bar once per stepped generation.
type progress struct {
	bar *pb.ProgressBar
}

func (p progress) Record(snap forest.Snapshot) error {
	if snap.Generation > 0 {
		p.bar.Increment()
	}
	return nil
}
