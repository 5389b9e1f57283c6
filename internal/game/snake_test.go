package game

import "testing"

func TestSnakeMoveAdvances(t *testing.T) {
	// Head at (5,5) heading right on a 20x20 board
	s := NewSnake(Coord{X: 5, Y: 5})

	if got := s.Move(20, 20); got != MoveAdvanced {
		t.Fatalf("Move() = %v, expected MoveAdvanced", got)
	}

	if s.Head() != (Coord{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, expected (6,5)", s.Head())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 (tail dropped)", s.Len())
	}
}

func TestSnakeMoveBlockedByWall(t *testing.T) {
	tests := []struct {
		name  string
		start Coord
		dir   Direction
	}{
		{"left edge", Coord{X: 0, Y: 5}, DirLeft},
		{"right edge", Coord{X: 9, Y: 5}, DirRight},
		{"top edge", Coord{X: 5, Y: 0}, DirUp},
		{"bottom edge", Coord{X: 5, Y: 9}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(tc.start)
			s.heading = tc.dir
			s.next = tc.dir

			if got := s.Move(10, 10); got != MoveBlocked {
				t.Errorf("Move() = %v, expected MoveBlocked", got)
			}
			// A blocked move must not mutate the body
			if s.Head() != tc.start {
				t.Errorf("Head() = %v, expected unchanged %v", s.Head(), tc.start)
			}
		})
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	// Hook shape: moving right from (5,5) hits the body at (6,5)
	s := &Snake{
		body: []Coord{
			{X: 5, Y: 5}, // Head
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		heading: DirRight,
		next:    DirRight,
	}

	if got := s.Move(20, 20); got != MoveBlocked {
		t.Errorf("Move() into own body = %v, expected MoveBlocked", got)
	}
}

func TestSnakeMoveIntoVacatingTail(t *testing.T) {
	// 2x2 loop: the head moves into the tail cell, which is vacated
	// on the same move when the snake is not growing.
	loop := []Coord{
		{X: 1, Y: 1}, // Head
		{X: 1, Y: 0},
		{X: 0, Y: 0},
		{X: 0, Y: 1}, // Tail
	}

	s := &Snake{body: append([]Coord(nil), loop...), heading: DirLeft, next: DirLeft}
	if got := s.Move(10, 10); got != MoveAdvanced {
		t.Errorf("Move() into vacating tail = %v, expected MoveAdvanced", got)
	}

	// With growth pending the tail stays put, so the same move collides.
	s = &Snake{body: append([]Coord(nil), loop...), heading: DirLeft, next: DirLeft, pendingGrowth: true}
	if got := s.Move(10, 10); got != MoveBlocked {
		t.Errorf("Move() into kept tail while growing = %v, expected MoveBlocked", got)
	}
}

func TestSnakeReversalRejected(t *testing.T) {
	tests := []struct {
		heading  Direction
		reversal Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			s := NewSnake(Coord{X: 5, Y: 5})
			s.heading = tc.heading
			s.next = tc.heading

			s.ChangeDirection(tc.reversal)
			if s.next == tc.reversal {
				t.Errorf("reversal %v accepted while heading %v", tc.reversal, tc.heading)
			}
		})
	}
}

func TestSnakeLastAcceptedDirectionWins(t *testing.T) {
	s := NewSnake(Coord{X: 5, Y: 5}) // Heading right

	s.ChangeDirection(DirUp)
	s.ChangeDirection(DirLeft) // Reversal of committed heading, rejected
	s.ChangeDirection(DirDown)

	if s.next != DirDown {
		t.Errorf("buffered direction = %v, expected %v (last accepted)", s.next, DirDown)
	}

	// The buffer only takes effect on the next move
	if s.heading != DirRight {
		t.Errorf("committed heading = %v, expected unchanged %v", s.heading, DirRight)
	}

	s.Move(20, 20)
	if s.heading != DirDown {
		t.Errorf("heading after Move() = %v, expected %v", s.heading, DirDown)
	}
}

func TestSnakeGrowth(t *testing.T) {
	s := NewSnake(Coord{X: 5, Y: 5})

	s.MarkGrowth()
	s.MarkGrowth() // Idempotent

	if got := s.Move(20, 20); got != MoveAdvanced {
		t.Fatalf("Move() = %v, expected MoveAdvanced", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() after growth move = %d, expected 2", s.Len())
	}

	// Growth is consumed: the next move keeps the length
	s.Move(20, 20)
	if s.Len() != 2 {
		t.Errorf("Len() after plain move = %d, expected 2", s.Len())
	}
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(Coord{X: 3, Y: 3})

	body := s.Body()
	body[0] = Coord{X: 9, Y: 9}

	if s.Head() != (Coord{X: 3, Y: 3}) {
		t.Error("mutating the Body() result must not affect the snake")
	}
}
