package game

// Event is a semantic input event delivered to the simulation.
// The platform layer maps physical keys to these; the core never
// sees raw key codes.
type Event int

const (
	EventNone Event = iota
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventTogglePause
	EventRestart
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventMoveUp:
		return "MoveUp"
	case EventMoveDown:
		return "MoveDown"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventTogglePause:
		return "TogglePause"
	case EventRestart:
		return "Restart"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// direction returns the heading a movement event requests,
// and false for non-directional events.
func (e Event) direction() (Direction, bool) {
	switch e {
	case EventMoveUp:
		return DirUp, true
	case EventMoveDown:
		return DirDown, true
	case EventMoveLeft:
		return DirLeft, true
	case EventMoveRight:
		return DirRight, true
	default:
		return 0, false
	}
}
