package forest

// Cell enumerates the states a grid cell can be in.
type Cell uint8

const (
	Empty Cell = iota
	Tree
	Burning
	Heating
)

// Valid reports whether c is one of the four defined states.
func (c Cell) Valid() bool { return c <= Heating }

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case Burning:
		return "burning"
	case Heating:
		return "heating"
	default:
		return "invalid"
	}
}
