package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"locklife/internal/core"
	"locklife/internal/render"
)

type styles struct {
	cells  [core.NumCategories]lipgloss.Style
	status lipgloss.Style
	paused lipgloss.Style
	help   lipgloss.Style
}

func newStyles(p render.Palette) styles {
	var s styles
	for cat := core.Category(0); cat < core.NumCategories; cat++ {
		s.cells[cat] = lipgloss.NewStyle().Background(lipgloss.Color(render.FormatHex(p.Color(cat))))
	}
	s.status = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color(render.FormatHex(p.Grid))).Padding(0, 1)
	s.paused = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	s.help = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	return s
}

// View renders the grid followed by a status line and key help.
func (m *Model) View() string {
	g := m.life.Grid()
	var b strings.Builder
	for row := 0; row < g.Height(); row++ {
		m.renderRow(&b, g, row)
		b.WriteByte('\n')
	}

	state := "running"
	if m.life.Paused() {
		state = m.styles.paused.Render("paused")
	}
	status := fmt.Sprintf("%s  gen %d  pop %d  changed %d  %s  %v",
		state, m.life.Generation(), g.Population(), m.life.LastChanged(), m.life.Rule(), m.life.Delay())
	b.WriteString(m.styles.status.Render(status))
	b.WriteByte('\n')
	b.WriteString(m.styles.help.Render("space pause · n step · s scatter · r clear · left alive · right lock · q quit"))
	return b.String()
}

// renderRow styles runs of equal category together.
func (m *Model) renderRow(b *strings.Builder, g *core.Grid, row int) {
	run, runCat := 0, core.CategoryDeadUnlocked
	flush := func() {
		if run > 0 {
			b.WriteString(m.styles.cells[runCat].Render(strings.Repeat(" ", run*cellColumns)))
		}
	}
	for col := 0; col < g.Width(); col++ {
		cat := g.CellAt(row, col).Category()
		if run > 0 && cat != runCat {
			flush()
			run = 0
		}
		runCat = cat
		run++
	}
	flush()
}
