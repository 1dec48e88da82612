package forest

import "forest-fire/internal/core"

// Simulator runs the forest-fire automaton on a pair of alternating grids.
type Simulator struct {
	cfg Config

	cur *core.Grid[Cell]
	nxt *core.Grid[Cell]

	generation int
	src        core.Source
}

// New returns a Simulator seeded from cfg.Seed. The grid starts all Empty;
// call Reset or Seed to plant trees.
func New(cfg Config) *Simulator {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource returns a Simulator drawing its randomness from src.
func NewWithSource(cfg Config, src core.Source) *Simulator {
	cur := core.NewGrid[Cell](cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	return &Simulator{
		cfg: cfg,
		cur: cur,
		nxt: core.NewGrid[Cell](cur.W, cur.H),
		src: src,
	}
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "forest" }

// Size reports the grid dimensions.
func (s *Simulator) Size() core.Size { return core.Size{W: s.cur.W, H: s.cur.H} }

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config { return s.cfg }

// Generation returns the number of steps taken since the last seed.
func (s *Simulator) Generation() int { return s.generation }

// Reset replaces the random source with one derived from seed and plants a
// fresh forest using the configured initial tree probability. A zero seed
// falls back to the configured one.
func (s *Simulator) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.src = core.NewRNG(seed)
	s.Seed(s.cfg.Params.InitialTreeProb)
}

// Seed sets every cell to Tree with probability p and Empty otherwise, and
// restarts the generation counter.
func (s *Simulator) Seed(p float64) {
	cells := s.cur.Cells()
	for i := range cells {
		if core.Chance(s.src, p) {
			cells[i] = Tree
		} else {
			cells[i] = Empty
		}
	}
	s.nxt.Fill(Empty)
	s.generation = 0
}

// Step advances the forest by one generation and returns the result.
func (s *Simulator) Step() Snapshot {
	s.transition()
	s.propagate()
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
	return s.Snapshot()
}

// transition computes every cell's next state from its current state alone.
func (s *Simulator) transition() {
	grow := s.cfg.Params.GrowProb
	fire := s.cfg.Params.FireProb
	cur := s.cur.Cells()
	nxt := s.nxt.Cells()
	for i, c := range cur {
		next := Empty
		switch c {
		case Empty:
			if core.Chance(s.src, grow) {
				next = Tree
			}
		case Tree:
			next = Tree
			if core.Chance(s.src, fire) {
				next = Burning
			}
		case Burning:
			next = Empty
		case Heating:
			next = Burning
		}
		nxt[i] = next
	}
}

// propagate marks trees next to fire as Heating. It writes only the next
// buffer. Cells burning in the next buffer heat any neighbouring tree; cells
// burning in the current buffer heat neighbours that were already trees
// before this step, which only matters for fires placed with SetCell.
func (s *Simulator) propagate() {
	w, h := s.cur.W, s.cur.H
	cur := s.cur.Cells()
	nxt := s.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := s.nxt.Index(x, y)
			ignited := nxt[idx] == Burning
			placed := cur[idx] == Burning
			if !ignited && !placed {
				continue
			}
			s.nxt.Neighbors(x, y, func(n int) {
				if nxt[n] != Tree {
					return
				}
				if ignited || cur[n] == Tree {
					nxt[n] = Heating
				}
			})
		}
	}
}

// Cell returns the current state at (row, col), or Empty when out of range.
func (s *Simulator) Cell(row, col int) Cell {
	if !s.cur.InBounds(col, row) {
		return Empty
	}
	return s.cur.At(col, row)
}

// SetCell overwrites the current state at (row, col). It reports false for
// out-of-range coordinates or undefined states.
func (s *Simulator) SetCell(row, col int, c Cell) bool {
	if !c.Valid() || !s.cur.InBounds(col, row) {
		return false
	}
	s.cur.Set(col, row, c)
	return true
}

// Ignite sets a tree at (row, col) on fire. Non-tree cells are left alone.
func (s *Simulator) Ignite(row, col int) bool {
	if s.Cell(row, col) != Tree {
		return false
	}
	return s.SetCell(row, col, Burning)
}

// Snapshot returns a copy of the current generation.
func (s *Simulator) Snapshot() Snapshot {
	cells := make([]Cell, len(s.cur.Cells()))
	copy(cells, s.cur.Cells())
	return Snapshot{
		Generation: s.generation,
		Width:      s.cur.W,
		Height:     s.cur.H,
		Cells:      cells,
	}
}
