package game

// Coord is a discrete cell on the board grid.
// Column (X) grows rightward, row (Y) grows downward.
type Coord struct {
	X, Y int
}

// Add returns the cell one step from c in the given direction.
func (c Coord) Add(d Direction) Coord {
	delta := d.Delta()
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Direction is one of the four unit headings on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{Y: -1}
	case DirDown:
		return Coord{Y: 1}
	case DirLeft:
		return Coord{X: -1}
	case DirRight:
		return Coord{X: 1}
	default:
		return Coord{}
	}
}

// Opposite returns the 180-degree reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
