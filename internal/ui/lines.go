package ui

import (
	"fmt"

	"forest-fire/internal/core"
	"forest-fire/internal/sims/forest"
)

// Lines builds the HUD text for a generation: status, census, fixed
// parameters and key help.
func Lines(snap forest.Snapshot, params core.ParameterSnapshot, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	c := snap.Census()
	lines := []string{
		fmt.Sprintf("Generation %d (%s)", snap.Generation, state),
		"",
		fmt.Sprintf("Trees    %d", c.Tree),
		fmt.Sprintf("Heating  %d", c.Heating),
		fmt.Sprintf("Burning  %d", c.Burning),
		fmt.Sprintf("Empty    %d", c.Empty),
	}
	for _, g := range params.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return append(lines,
		"",
		"Space pause  N step",
		"R reset  S new seed",
		"Click ignite  Q quit",
	)
}
