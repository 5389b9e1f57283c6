// Package game implements the snake simulation core: the board
// entities, the deterministic tick step, and the play/pause/game-over
// state machine. It has no external dependencies so the logic stays
// pure and testable; a platform layer feeds it events and renders the
// snapshots it produces.
package game

import (
	"fmt"
	"math/rand"
)

// Mode is the state of the round.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DefaultPointsPerFood is the reward granted per consumed food item.
const DefaultPointsPerFood = 10

// minBoardDim is the smallest usable board edge: the snake spawns
// centered and needs room to move before the first food can be reached.
const minBoardDim = 4

// Config describes a board at construction time. Dimensions are fixed
// for the life of the game.
type Config struct {
	Width  int   // Board width in grid cells
	Height int   // Board height in grid cells
	Points int   // Score per food item; 0 means DefaultPointsPerFood
	Seed   int64 // RNG seed for deterministic food placement
}

// Game owns one snake, one food item, the score and the round mode,
// and advances the whole simulation one tick at a time. It is not safe
// for concurrent use; a single simulation goroutine must own it.
type Game struct {
	cfg   Config
	rng   *rand.Rand
	snake *Snake
	food  Food
	score int
	mode  Mode
}

// New creates a game for the configured board and starts the first
// round. Degenerate boards are rejected: food relocation cannot
// terminate and the snake has nowhere to go.
func New(cfg Config) (*Game, error) {
	if cfg.Width < minBoardDim || cfg.Height < minBoardDim {
		return nil, fmt.Errorf("game: board %dx%d is too small, minimum is %dx%d",
			cfg.Width, cfg.Height, minBoardDim, minBoardDim)
	}
	if cfg.Points < 0 {
		return nil, fmt.Errorf("game: points per food must be non-negative, got %d", cfg.Points)
	}
	if cfg.Points == 0 {
		cfg.Points = DefaultPointsPerFood
	}

	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	g.Reset()
	return g, nil
}

// Reset starts a fresh round: new centered snake, newly placed food,
// zero score, playing mode. The RNG stream is not reseeded, so a
// single seed still yields a deterministic sequence of rounds.
func (g *Game) Reset() {
	g.snake = NewSnake(Coord{X: g.cfg.Width / 2, Y: g.cfg.Height / 2})
	g.food = Food{}
	g.food.Relocate(g.rng, g.cfg.Width, g.cfg.Height, g.snake.Occupies)
	g.score = 0
	g.mode = ModePlaying
}

// HandleInput applies one semantic input event. Events that make no
// sense in the current mode are silently ignored. The return value is
// true when the event asks the outer loop to stop; it is never a
// state mutation by itself.
func (g *Game) HandleInput(ev Event) (quit bool) {
	switch ev {
	case EventQuit:
		return true
	case EventTogglePause:
		switch g.mode {
		case ModePlaying:
			g.mode = ModePaused
		case ModePaused:
			g.mode = ModePlaying
		}
	case EventRestart:
		if g.mode == ModeGameOver {
			g.Reset()
		}
	default:
		if dir, ok := ev.direction(); ok && g.mode == ModePlaying {
			g.snake.ChangeDirection(dir)
		}
	}
	return false
}

// Advance runs one simulation tick and returns the renderable frame.
// While paused or game over the state is returned unchanged. A blocked
// move ends the round; it is a normal outcome reported through the
// snapshot's mode, never an error.
func (g *Game) Advance() Snapshot {
	if g.mode != ModePlaying {
		return g.Snapshot()
	}

	if g.snake.Move(g.cfg.Width, g.cfg.Height) == MoveBlocked {
		g.mode = ModeGameOver
		return g.Snapshot()
	}

	if g.snake.Head() == g.food.Position() {
		g.snake.MarkGrowth()
		g.score += g.cfg.Points
		if !g.food.Relocate(g.rng, g.cfg.Width, g.cfg.Height, g.snake.Occupies) {
			// The snake covers the whole board; the round cannot continue.
			g.mode = ModeGameOver
		}
	}

	return g.Snapshot()
}

// Snapshot returns an immutable description of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:  g.snake.Body(),
		Food:  g.food.Position(),
		Score: g.score,
		Mode:  g.mode,
	}
}

// Board returns the fixed board dimensions in grid cells.
func (g *Game) Board() (width, height int) {
	return g.cfg.Width, g.cfg.Height
}
