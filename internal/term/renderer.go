// Package term draws forest generations to a terminal with tcell.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"forest-fire/internal/sims/forest"
)

// ErrNoScreen is returned when rendering without an initialised screen.
var ErrNoScreen = errors.New("term: no screen")

// headerRows is the number of status lines drawn above the grid.
const headerRows = 1

// Renderer paints snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	styles [4]tcell.Style
	once   sync.Once
}

// Open initialises the controlling terminal and returns a Renderer for it.
func Open() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an already initialised screen.
func New(screen tcell.Screen) *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorReset)
	r := &Renderer{screen: screen}
	r.styles[forest.Empty] = base
	r.styles[forest.Tree] = base.Foreground(tcell.ColorGreen)
	r.styles[forest.Burning] = base.Foreground(tcell.ColorRed).Bold(true)
	r.styles[forest.Heating] = base.Foreground(tcell.ColorYellow)
	if screen != nil {
		screen.HideCursor()
	}
	return r
}

// Render clears the screen and draws the status line and every cell that
// fits on screen.
func (r *Renderer) Render(snap forest.Snapshot) error {
	if r == nil || r.screen == nil {
		return ErrNoScreen
	}
	r.screen.Clear()
	sw, sh := r.screen.Size()

	c := snap.Census()
	status := fmt.Sprintf("generation %d  trees %d  heating %d  burning %d  [q] quit",
		snap.Generation, c.Tree, c.Heating, c.Burning)
	r.drawText(0, 0, status, tcell.StyleDefault.Bold(true))

	for row := 0; row < snap.Height && row+headerRows < sh; row++ {
		for col := 0; col < snap.Width && col < sw; col++ {
			cell := snap.At(row, col)
			r.screen.SetContent(col, row+headerRows, cell.Glyph(), nil, r.style(cell))
		}
	}
	r.screen.Show()
	return nil
}

func (r *Renderer) style(c forest.Cell) tcell.Style {
	if !c.Valid() {
		return tcell.StyleDefault
	}
	return r.styles[c]
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	sw, _ := r.screen.Size()
	for _, ch := range text {
		if x >= sw {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Watch polls terminal events until the screen is closed and calls cancel
// when the user presses q, Esc or Ctrl-C. Run it in its own goroutine.
func (r *Renderer) Watch(ctx context.Context, cancel context.CancelFunc) {
	if r == nil || r.screen == nil {
		return
	}
	screen := r.screen
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				cancel()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Close restores the terminal. It is safe to call more than once.
func (r *Renderer) Close() {
	if r == nil || r.screen == nil {
		return
	}
	r.once.Do(r.screen.Fini)
}
