package runner

import (
	"context"
	"errors"
	"testing"

	"forest-fire/internal/sims/forest"
)

type fakeRenderer struct {
	generations []int
	failAt      int
	err         error
}

func (f *fakeRenderer) Render(s forest.Snapshot) error {
	if f.err != nil && s.Generation == f.failAt {
		return f.err
	}
	f.generations = append(f.generations, s.Generation)
	return nil
}

type countingPacer struct {
	waits    int
	cancelAt int
	cancel   context.CancelFunc
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	if p.cancel != nil && p.waits == p.cancelAt {
		p.cancel()
	}
	return ctx.Err()
}

func newSim() *forest.Simulator {
	cfg := forest.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 8
	sim := forest.New(cfg)
	sim.Reset(5)
	return sim
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	sim := newSim()
	renderer := &fakeRenderer{}
	pacer := &countingPacer{}
	rec := &fakeRenderer{}

	err := New(sim, Options{
		Renderer:       renderer,
		Pacer:          pacer,
		Recorders:      []Recorder{recorderFunc(rec.Render)},
		MaxGenerations: 4,
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []int{0, 1, 2, 3, 4}
	if len(renderer.generations) != len(want) {
		t.Fatalf("rendered %v, want %v", renderer.generations, want)
	}
	for i, g := range want {
		if renderer.generations[i] != g || rec.generations[i] != g {
			t.Fatalf("rendered %v recorded %v, want %v", renderer.generations, rec.generations, want)
		}
	}
	if pacer.waits != 4 {
		t.Fatalf("pacer waited %d times, want 4", pacer.waits)
	}
	if sim.Generation() != 4 {
		t.Fatalf("simulator at generation %d, want 4", sim.Generation())
	}
}

func TestRunCancellationIsCleanStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pacer := &countingPacer{cancelAt: 3, cancel: cancel}
	renderer := &fakeRenderer{}

	if err := New(newSim(), Options{Renderer: renderer, Pacer: pacer}).Run(ctx); err != nil {
		t.Fatalf("cancelled run returned %v", err)
	}
	if got := len(renderer.generations); got != 3 {
		t.Fatalf("rendered %d generations before cancel, want 3", got)
	}
}

func TestRunPropagatesRendererError(t *testing.T) {
	boom := errors.New("terminal gone")
	renderer := &fakeRenderer{failAt: 2, err: boom}

	err := New(newSim(), Options{Renderer: renderer, MaxGenerations: 10}).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected renderer error, got %v", err)
	}
	if len(renderer.generations) != 2 {
		t.Fatalf("rendered %v before failing", renderer.generations)
	}
}

func TestRunHeadless(t *testing.T) {
	sim := newSim()
	if err := New(sim, Options{MaxGenerations: 25}).Run(context.Background()); err != nil {
		t.Fatalf("headless run: %v", err)
	}
	if sim.Generation() != 25 {
		t.Fatalf("generation = %d, want 25", sim.Generation())
	}
}

func TestRunWithoutSimulator(t *testing.T) {
	if err := New(nil, Options{}).Run(context.Background()); !errors.Is(err, ErrNoSimulator) {
		t.Fatalf("expected ErrNoSimulator, got %v", err)
	}
}

type recorderFunc func(forest.Snapshot) error

func (f recorderFunc) Record(s forest.Snapshot) error { return f(s) }
