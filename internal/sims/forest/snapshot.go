package forest

// Snapshot is an immutable copy of one generation in row-major order.
type Snapshot struct {
	Generation int
	Width      int
	Height     int
	Cells      []Cell
}

// At returns the state at (row, col), or Empty when out of range.
func (s Snapshot) At(row, col int) Cell {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return Empty
	}
	return s.Cells[row*s.Width+col]
}

// Census counts cells per state.
type Census struct {
	Empty   int
	Tree    int
	Burning int
	Heating int
}

// Total returns the number of cells counted.
func (c Census) Total() int { return c.Empty + c.Tree + c.Burning + c.Heating }

// Census tallies the states of the snapshot.
func (s Snapshot) Census() Census {
	var c Census
	for _, cell := range s.Cells {
		switch cell {
		case Empty:
			c.Empty++
		case Tree:
			c.Tree++
		case Burning:
			c.Burning++
		case Heating:
			c.Heating++
		}
	}
	return c
}
