package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Cell size in characters, excluding grid lines.
const (
	cellW = 9
	cellH = 3
)

type layout struct {
	x, y int // top-left of the board including the frame
	ok   bool
}

// Render draws the board, the HUD and the session tally.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := 3*cellW + 4
	boardH := 3*cellH + 4
	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - boardH) / 2
	if oy < 2 {
		oy = 2
	}
	if ox < 0 {
		ox = 0
	}
	g.layout = layout{x: ox, y: oy, ok: true}

	dst.SetPen(core.ColorBrightWhite)
	modeName := "vs Computer"
	if g.mode == config.ModePvP {
		modeName = "2 Players"
	}
	dst.DrawText(1, 0, fmt.Sprintf(" Tic-Tac-Toe  [%s]  %s", modeName, g.Status()))

	dst.SetPen(core.ColorGray)
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))
	for i := 1; i < 3; i++ {
		dst.DrawVLine(ox+i*(cellW+1), oy+1, boardH-2, '│')
		dst.DrawHLine(ox+1, oy+i*(cellH+1), boardW-2, '─')
	}

	_, line := g.board.Winner()
	for cell := 0; cell < 9; cell++ {
		r := g.cellRect(cell)
		if cell == g.cursor && g.board.Result() == InProgress {
			dst.SetPen(core.ColorBrightCyan)
			dst.DrawText(r.X, r.Y+1, "[")
			dst.DrawText(r.Right()-1, r.Y+1, "]")
		}

		onLine := line >= 0 && (Lines[line][0] == cell || Lines[line][1] == cell || Lines[line][2] == cell)
		switch g.board[cell] {
		case X:
			dst.SetPen(markColor(core.ColorBrightBlue, onLine))
			drawX(dst, r)
		case O:
			dst.SetPen(markColor(core.ColorBrightMagenta, onLine))
			drawO(dst, r)
		default:
			dst.SetPen(core.ColorGray)
			dst.Set(r.X+r.W/2, r.Y+1, rune('1'+cell))
		}
	}

	dst.SetPen(core.ColorWhite)
	dst.DrawTextCentered(oy+boardH+1, fmt.Sprintf("X %d   O %d   Draws %d", g.tally.XWins, g.tally.OWins, g.tally.Draws))
}

func markColor(c core.Color, onLine bool) core.Color {
	if onLine {
		return core.ColorBrightYellow
	}
	return c
}

// cellRect returns the screen area of a cell inside the last layout.
func (g *Game) cellRect(cell int) core.Rect {
	col, row := cell%3, cell/3
	return core.NewRect(
		g.layout.x+1+col*(cellW+1),
		g.layout.y+1+row*(cellH+1),
		cellW, cellH,
	)
}

func drawX(dst *core.Screen, r core.Rect) {
	cx, cy := r.Center()
	dst.DrawLine(cx-2, cy-1, cx+2, cy+1, '\\')
	dst.DrawLine(cx+2, cy-1, cx-2, cy+1, '/')
	dst.Set(cx, cy, 'X')
}

func drawO(dst *core.Screen, r core.Rect) {
	cx, cy := r.Center()
	dst.FillCircle(cx, cy, 1, 'O')
	dst.Set(cx, cy, ' ')
}

// CellAt maps a screen position from the last Render to a board cell.
func (g *Game) CellAt(x, y int) (int, bool) {
	if !g.layout.ok {
		return 0, false
	}
	for cell := 0; cell < 9; cell++ {
		if g.cellRect(cell).Contains(x, y) {
			return cell, true
		}
	}
	return 0, false
}
