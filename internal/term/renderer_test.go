package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"forest-fire/internal/sims/forest"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func TestRenderDrawsGlyphsAndColors(t *testing.T) {
	screen := newScreen(t, 40, 6)
	r := New(screen)
	defer r.Close()

	snap := forest.Snapshot{
		Generation: 7,
		Width:      4,
		Height:     1,
		Cells:      []forest.Cell{forest.Empty, forest.Tree, forest.Burning, forest.Heating},
	}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render: %v", err)
	}

	tests := []struct {
		col   int
		glyph rune
		fg    tcell.Color
	}{
		{1, forest.Tree.Glyph(), tcell.ColorGreen},
		{2, forest.Burning.Glyph(), tcell.ColorRed},
		{3, forest.Heating.Glyph(), tcell.ColorYellow},
	}
	for _, tt := range tests {
		mainc, _, style, _ := screen.GetContent(tt.col, headerRows)
		fg, _, _ := style.Decompose()
		if mainc != tt.glyph || fg != tt.fg {
			t.Fatalf("col %d drew %q in %v, want %q in %v", tt.col, mainc, fg, tt.glyph, tt.fg)
		}
	}
	if mainc, _, _, _ := screen.GetContent(0, headerRows); mainc != ' ' {
		t.Fatalf("empty cell drew %q, want blank", mainc)
	}

	status := ""
	for x := 0; x < len("generation 7"); x++ {
		mainc, _, _, _ := screen.GetContent(x, 0)
		status += string(mainc)
	}
	if status != "generation 7" {
		t.Fatalf("status line starts with %q", status)
	}
}

func TestRenderClipsToScreen(t *testing.T) {
	screen := newScreen(t, 3, 2)
	r := New(screen)
	defer r.Close()

	cells := make([]forest.Cell, 10*10)
	for i := range cells {
		cells[i] = forest.Tree
	}
	if err := r.Render(forest.Snapshot{Width: 10, Height: 10, Cells: cells}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if mainc, _, _, _ := screen.GetContent(2, 1); mainc != forest.Tree.Glyph() {
		t.Fatalf("last visible cell drew %q", mainc)
	}
}

func TestRenderWithoutScreen(t *testing.T) {
	var r *Renderer
	if err := r.Render(forest.Snapshot{}); !errors.Is(err, ErrNoScreen) {
		t.Fatalf("expected ErrNoScreen, got %v", err)
	}
}

func TestWatchCancelsOnQuitKey(t *testing.T) {
	screen := newScreen(t, 10, 4)
	r := New(screen)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		r.Watch(ctx, cancel)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after quit key")
	}
	if ctx.Err() == nil {
		t.Fatal("quit key did not cancel the context")
	}
}
