package core

import (
	"slices"
	"testing"
)

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[uint8](0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(g.Cells()))
	}
}

func TestGridNeighborsDoNotWrap(t *testing.T) {
	g := NewGrid[uint8](4, 3)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 3},
		{"bottom-right corner", 3, 2, 3},
		{"top edge", 1, 0, 5},
		{"interior", 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 0
			g.Neighbors(tt.x, tt.y, func(idx int) {
				if idx < 0 || idx >= len(g.Cells()) {
					t.Fatalf("neighbor index %d out of range", idx)
				}
				if idx == g.Index(tt.x, tt.y) {
					t.Fatal("neighborhood must exclude the center cell")
				}
				count++
			})
			if count != tt.want {
				t.Fatalf("got %d neighbors, want %d", count, tt.want)
			}
		})
	}
}

func TestGridSetAtFill(t *testing.T) {
	g := NewGrid[int](3, 2)
	g.Fill(7)
	g.Set(2, 1, 9)
	if g.At(2, 1) != 9 || g.At(0, 0) != 7 {
		t.Fatalf("unexpected values %v", g.Cells())
	}
	if !g.InBounds(2, 1) || g.InBounds(3, 1) || g.InBounds(0, -1) {
		t.Fatal("InBounds disagrees with grid dimensions")
	}
	if !slices.Equal(g.Cells(), []int{7, 7, 7, 7, 7, 9}) {
		t.Fatalf("unexpected layout %v", g.Cells())
	}
}
