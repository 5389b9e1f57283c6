package game

// MoveResult reports the outcome of a single snake move.
type MoveResult int

const (
	// MoveAdvanced means the head moved to a free cell.
	MoveAdvanced MoveResult = iota
	// MoveBlocked means the move would leave the board or hit the
	// snake's own body. A blocked move ends the round.
	MoveBlocked
)

// Snake is an ordered sequence of occupied cells plus a heading.
// The head is body[0]; the body never contains duplicates while alive.
type Snake struct {
	body          []Coord
	heading       Direction // Committed direction of travel
	next          Direction // Buffered direction for the next move
	pendingGrowth bool      // Keep the tail on the next move
}

// NewSnake creates a length-1 snake at the given cell, heading right.
func NewSnake(start Coord) *Snake {
	return &Snake{
		body:    []Coord{start},
		heading: DirRight,
		next:    DirRight,
	}
}

// Move advances the snake one cell in its committed direction on a
// width x height board. The buffered direction becomes committed first.
// Returns MoveBlocked without mutating the body if the new head would
// fall outside the board or intersect the body.
func (s *Snake) Move(width, height int) MoveResult {
	s.heading = s.next

	newHead := s.body[0].Add(s.heading)
	if newHead.X < 0 || newHead.X >= width || newHead.Y < 0 || newHead.Y >= height {
		return MoveBlocked
	}

	// Self collision: the tail cell vacates this move unless the snake
	// is growing, so exclude it from the check when not growing.
	checkLen := len(s.body)
	if !s.pendingGrowth {
		checkLen--
	}
	for i := range checkLen {
		if s.body[i] == newHead {
			return MoveBlocked
		}
	}

	s.body = append([]Coord{newHead}, s.body...)
	if s.pendingGrowth {
		s.pendingGrowth = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return MoveAdvanced
}

// ChangeDirection buffers a new heading for the next move. A request
// that reverses the committed heading is rejected; repeated calls
// within one tick keep only the last accepted value.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.next = d
}

// MarkGrowth schedules the tail to be kept on the next move. Idempotent.
func (s *Snake) MarkGrowth() {
	s.pendingGrowth = true
}

// Head returns the cell occupied by the snake's head.
func (s *Snake) Head() Coord {
	return s.body[0]
}

// Len returns the number of cells the snake occupies.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the committed direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Occupies reports whether the snake's body covers the given cell.
func (s *Snake) Occupies(c Coord) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []Coord {
	out := make([]Coord, len(s.body))
	copy(out, s.body)
	return out
}
