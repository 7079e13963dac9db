package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Each grid cell is two characters wide so the board looks square.
const cellW = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.cfg.Grid.Width*cellW + 2
	boardH := g.cfg.Grid.Height + 2
	ox := (dst.Width() - boardW) / 2
	oy := 1
	if ox < 0 {
		ox = 0
	}

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(1, 0, fmt.Sprintf(" Snake  Score: %d  Best: %d  [%s]", g.score, g.best, g.Boundary()))

	if g.Boundary() == config.BoundaryWall {
		dst.SetPen(core.ColorBrightRed)
	} else {
		dst.SetPen(core.ColorGray)
	}
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))

	dst.SetPen(core.ColorGray)
	for y := 0; y < g.cfg.Grid.Height; y++ {
		for x := 0; x < g.cfg.Grid.Width; x++ {
			dst.Set(ox+1+x*cellW, oy+1+y, '·')
		}
	}

	if g.food.X >= 0 {
		dst.SetPen(core.ColorBrightRed)
		dst.DrawText(ox+1+g.food.X*cellW, oy+1+g.food.Y, "()")
	}

	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		switch {
		case g.dead:
			dst.SetPen(core.ColorRed)
		case i == 0:
			dst.SetPen(core.ColorBrightGreen)
		default:
			dst.SetPen(core.ColorGreen)
		}
		glyph := "▓▓"
		if i == 0 {
			glyph = "██"
		}
		dst.DrawText(ox+1+seg.X*cellW, oy+1+seg.Y, glyph)
	}

	dst.SetPen(core.ColorBrightWhite)
	switch {
	case g.won:
		dst.DrawMessageBox("YOU WIN!", fmt.Sprintf("Final Score: %d", g.score))
	case g.dead:
		dst.DrawMessageBox("GAME OVER", "Press R to restart")
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to continue")
	}
}
