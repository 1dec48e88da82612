package forest

import "image/color"

var forestPalette = []color.RGBA{
	Empty:   {R: 0, G: 0, B: 0, A: 255},
	Tree:    {R: 40, G: 160, B: 60, A: 255},
	Burning: {R: 220, G: 40, B: 30, A: 255},
	Heating: {R: 240, G: 200, B: 40, A: 255},
}

// Palette returns the RGBA color of every state, indexed by Cell.
func Palette() []color.RGBA {
	return forestPalette
}

// Glyph returns the terminal character drawn for c.
func (c Cell) Glyph() rune {
	switch c {
	case Tree:
		return '♣'
	case Burning:
		return '▲'
	case Heating:
		return '•'
	default:
		return ' '
	}
}
