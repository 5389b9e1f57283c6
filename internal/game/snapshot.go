package game

// Snapshot is the renderer-facing description of one frame. It shares
// no memory with the game, so the platform layer may hand it to a
// rendering goroutine while the simulation keeps ticking.
type Snapshot struct {
	Body  []Coord // Snake cells, head first
	Food  Coord
	Score int
	Mode  Mode
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Coord {
	return s.Body[0]
}

// Equal reports whether two snapshots describe the same frame.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Score != other.Score || s.Mode != other.Mode || s.Food != other.Food {
		return false
	}
	if len(s.Body) != len(other.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != other.Body[i] {
			return false
		}
	}
	return true
}
