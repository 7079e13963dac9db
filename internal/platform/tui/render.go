package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Palette holds the styles of one output. SSH sessions each get their own,
// bound to the session's renderer so color detection follows the client.
type Palette struct {
	r      *lipgloss.Renderer
	colors map[core.Color]lipgloss.Style

	Footer lipgloss.Style
	Muted  lipgloss.Style
	Title  lipgloss.Style
	Cursor lipgloss.Style
	Hint   lipgloss.Style
}

// NewPalette builds styles for r. A nil renderer uses the process default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		r:      r,
		colors: make(map[core.Color]lipgloss.Style),
		Footer: r.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("241")),
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Cursor: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Hint:   r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
	for _, c := range core.Colors() {
		st := r.NewStyle()
		if code := c.Code(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		p.colors[c] = st
	}
	return p
}

// Renderer returns the renderer the palette was built for.
func (p *Palette) Renderer() *lipgloss.Renderer {
	return p.r
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.colors[c]; ok {
		return s
	}
	return p.colors[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
