//go:build !ebiten

package ui

import (
	"forest-fire/internal/core"
	"forest-fire/internal/sims/forest"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterSnapshot, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(forest.Snapshot, bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
