// Package tui provides the Bubble Tea frontend. Every message is one
// iteration of the session loop: keys and mouse events are applied at once,
// and tick messages give the session a chance to advance.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"locklife/internal/core"
	"locklife/internal/input"
	"locklife/internal/sims/life"
)

// cellColumns is the terminal width of one grid cell.
const cellColumns = 2

// TickMsg is sent to sample the session clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model wrapping a session.
type Model struct {
	life     *life.Life
	styles   styles
	interval time.Duration
	now      func() time.Time

	pointer input.Sample
	// Terminal coordinates of the last mouse event.
	mouseX, mouseY int
}

// New wraps l in a model that samples the clock every interval.
func New(l *life.Life, interval time.Duration) *Model {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Model{
		life:     l,
		styles:   newStyles(l.Config().Palette),
		interval: interval,
		now:      time.Now,
		pointer:  input.Sample{Coord: core.NoCoord},
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd { return tickCmd(m.interval) }

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		m.life.Update(life.Frame{Pointer: m.pointer}, m.now())
	case TickMsg:
		m.life.Update(life.Frame{Pointer: m.pointer}, time.Time(msg))
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	now := m.now()
	frame := life.Frame{Pointer: m.pointer}
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeySpace:
		frame.TogglePause = true
	default:
		switch msg.String() {
		case "q":
			return tea.Quit
		case " ":
			frame.TogglePause = true
		case "n":
			frame.StepOnce = true
		case "s":
			frame.Scatter = true
			frame.Seed = now.UnixNano()
		case "r", "c":
			frame.Clear = true
		default:
			return nil
		}
	}
	m.life.Update(frame, now)
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.mouseX, m.mouseY = msg.X, msg.Y
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.pointer.Primary = true
		case tea.MouseButtonRight:
			m.pointer.Secondary = true
		}
	case tea.MouseActionRelease:
		// Not every terminal reports which button was released.
		m.pointer.Primary = false
		m.pointer.Secondary = false
	}
	m.pointer.Coord, m.pointer.InGrid = m.cellAt(msg.X, msg.Y)
}

func (m *Model) cellAt(x, y int) (core.Coord, bool) {
	if x < 0 || y < 0 {
		return core.NoCoord, false
	}
	coord := core.Coord{Row: y, Col: x / cellColumns}
	if !m.life.Grid().InBounds(coord.Row, coord.Col) {
		return core.NoCoord, false
	}
	return coord, true
}
