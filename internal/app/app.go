//go:build ebiten

package app

import (
	"time"

	"forest-fire/internal/core"
	"forest-fire/internal/render"
	"forest-fire/internal/sims/forest"
	"forest-fire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the forest simulator to the ebiten.Game interface.
type Game struct {
	sim     *forest.Simulator
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep
	snap    forest.Snapshot

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game that advances one generation per delay.
func New(sim *forest.Simulator, scale int, seed int64, delay time.Duration) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim.Parameters(), hudWidth),
		stepper: core.NewFixedStep(delay),
		snap:    sim.Snapshot(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.snap = g.sim.Snapshot()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.sim.Ignite(y/g.scale, x/g.scale) {
			g.snap = g.sim.Snapshot()
		}
	}

	due := g.stepper.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.snap = g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.snap, g.paused)
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.snap.Cells, forest.Palette(), g.scale)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
