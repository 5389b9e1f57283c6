package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model driving one game. It owns the
// simulation exclusively: key messages become semantic events applied
// between ticks, and each TickMsg advances the core exactly once, so
// the ordering contract of the simulation holds by construction.
type Model struct {
	game   *game.Game
	store  *storage.Store // May be nil; score saving is best-effort
	screen *Screen
	keys   KeyMap
	help   help.Model

	tickRate  int
	boardW    int
	boardH    int
	snap      game.Snapshot
	highScore int

	quitting   bool
	scoreSaved bool
}

// NewModel creates a model for the given game. The store may be nil.
func NewModel(g *game.Game, store *storage.Store, tickRate, screenW, screenH int) Model {
	boardW, boardH := g.Board()

	m := Model{
		game:     g,
		store:    store,
		screen:   NewScreen(screenW, screenH-1), // Bottom row is the help bar
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
		boardW:   boardW,
		boardH:   boardH,
		snap:     g.Snapshot(),
	}

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.highScore = best
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey maps a key press to a game event and applies it. Events
// queue up inside the core's input handling before the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.MapKey(msg)
	if ev == game.EventNone {
		return m, nil
	}

	if m.game.HandleInput(ev) {
		m.quitting = true
		return m, tea.Quit
	}

	m.snap = m.game.Snapshot()
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.snap = m.game.Advance()

	switch m.snap.Mode {
	case game.ModeGameOver:
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	case game.ModePlaying:
		m.scoreSaved = false
	}

	return m, tickCmd(m.tickRate)
}

// saveScore persists the round's score, best-effort.
func (m *Model) saveScore() {
	if m.snap.Score > m.highScore {
		m.highScore = m.snap.Score
	}
	if m.store == nil || m.snap.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveScore(m.snap.Score)
}

// View renders the current frame plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame(m.screen, m.snap, m.boardW, m.boardH, m.highScore)
	return styleScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks
// until the player quits.
func Run(g *game.Game, store *storage.Store, tickRate, screenW, screenH int) error {
	p := tea.NewProgram(
		NewModel(g, store, tickRate, screenW, screenH),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
