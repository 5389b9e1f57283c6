package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Runes used for board elements. Styling keys off these, so they stay
// distinct from anything the HUD prints.
const (
	runeHead = 'O'
	runeBody = 'o'
	runeFood = '*'
)

// hudHeight is the number of rows above the board (status line + separator).
const hudHeight = 2

var (
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	plainStyle  = lipgloss.NewStyle()
)

// runeClass groups cell runes that share a style, so runs of
// equally-styled cells render together and keep the ANSI overhead down.
type runeClass int

const (
	classPlain runeClass = iota
	classHead
	classBody
	classFood
	classBorder
)

func classFor(r rune) runeClass {
	switch r {
	case runeHead:
		return classHead
	case runeBody:
		return classBody
	case runeFood:
		return classFood
	case '┌', '┐', '└', '┘', '─', '│':
		return classBorder
	default:
		return classPlain
	}
}

func (c runeClass) style() lipgloss.Style {
	switch c {
	case classHead:
		return headStyle
	case classBody:
		return bodyStyle
	case classFood:
		return foodStyle
	case classBorder:
		return borderStyle
	default:
		return plainStyle
	}
}

// styleScreen converts a composed screen buffer to a styled string.
func styleScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := classFor(s.Get(x, y))
			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if classFor(r) != start {
					break
				}
				run.WriteRune(r)
				x++
			}
			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}

// frame composes one snapshot into the screen buffer. boardW/boardH
// are grid cells; the board is drawn inside a border box centered
// horizontally below the HUD.
func frame(dst *Screen, snap game.Snapshot, boardW, boardH, highScore int) {
	dst.Clear()

	drawHUD(dst, snap, highScore)

	// Border box plus HUD must fit the window
	if dst.Width() < boardW+2 || dst.Height() < boardH+2+hudHeight {
		drawOverlay(dst, "Window too small", "Enlarge the terminal to play")
		return
	}

	offX := (dst.Width() - (boardW + 2)) / 2
	offY := hudHeight
	dst.DrawBox(offX, offY, boardW+2, boardH+2)

	cell := func(c game.Coord) (int, int) {
		return offX + 1 + c.X, offY + 1 + c.Y
	}

	fx, fy := cell(snap.Food)
	dst.Set(fx, fy, runeFood)

	for i, seg := range snap.Body {
		sx, sy := cell(seg)
		if i == 0 {
			dst.Set(sx, sy, runeHead)
		} else {
			dst.Set(sx, sy, runeBody)
		}
	}

	switch snap.Mode {
	case game.ModePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case game.ModeGameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d, press R to restart", snap.Score))
	}
}

// drawHUD draws the top status bar and separator.
func drawHUD(dst *Screen, snap game.Snapshot, highScore int) {
	hud := fmt.Sprintf(" Snake | Score: %d", snap.Score)
	if highScore > 0 {
		hud += fmt.Sprintf("  Best: %d", highScore)
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillBox(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
