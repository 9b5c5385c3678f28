package viz

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bounce/internal/clock"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

const (
	defaultCols     = 60
	defaultRows     = 20
	panelWidth      = 36
	historyCapacity = 240
)

// The canvas border occupies the first row and column of the screen.
const originX, originY = 1, 1

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(clock.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the bubbletea frontend for one session. Frames are driven by
// tea.Tick at the fallback rate; mouse messages become queued pointer events.
type Model struct {
	session *sim.Session
	canvas  *Canvas
	start   time.Time
	running bool
	last    sim.Frame
	heights []float64
	theme   int
	styles  styles
}

func NewModel(s *sim.Session) Model {
	return Model{
		session: s,
		canvas:  FitCanvas(defaultCols, defaultRows, s.View),
		start:   time.Now(),
		running: true,
		heights: make([]float64, 0, historyCapacity),
		styles:  Themes[0].styles(),
	}
}

// FitCanvas returns the largest canvas within cols x rows that shows all of
// view, trimmed to the viewport so the border hugs it.
func FitCanvas(cols, rows int, view physics.Viewport) *Canvas {
	probe := NewCanvas(cols, rows)
	probe.Fit(view)
	w := int(math.Ceil(view.Width * probe.Scale / 2))
	h := int(math.Ceil(view.Height * probe.Scale / 4))
	c := NewCanvas(min(w, cols), min(h, rows))
	c.Scale = probe.Scale
	return c
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.session.Reset()
			m.heights = m.heights[:0]
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = Themes[m.theme].styles()
		}
	case tea.MouseMsg:
		m.pointer(msg)
	case tea.WindowSizeMsg:
		cols := msg.Width - panelWidth - 2
		rows := msg.Height - 2
		if cols > 0 && rows > 0 {
			m.canvas = FitCanvas(cols, rows, m.session.View)
			log.Printf("terminal %dx%d, canvas %dx%d cells", msg.Width, msg.Height, m.canvas.Width, m.canvas.Height)
		}
	case TickMsg:
		if m.running {
			now := float64(time.Time(msg).Sub(m.start)) / float64(time.Millisecond)
			m.last = m.session.Frame(m.canvas, now)
			m.record(m.session.View.Height - m.session.Body.Rad - m.last.Coor.Y)
		}
		return m, tick()
	}
	return m, nil
}

// pointer translates a terminal mouse message into a queued pointer event.
func (m *Model) pointer(msg tea.MouseMsg) {
	x, y := m.canvas.CellToView(msg.X-originX, msg.Y-originY)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.Post(sim.PointerPressed{X: x, Y: y})
		}
	case tea.MouseActionRelease:
		m.session.Post(sim.PointerReleased{})
	case tea.MouseActionMotion:
		m.session.Post(sim.PointerMoved{X: x, Y: y})
	}
}

func (m *Model) record(h float64) {
	m.heights = append(m.heights, h)
	if len(m.heights) > historyCapacity {
		m.heights = m.heights[1:]
	}
}

func (m Model) View() string {
	s := m.session
	st := m.styles
	var b strings.Builder

	b.WriteString(st.header.Render("BOUNCE") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if s.Body.Drag {
		status = st.drag.Render("DRAGGING")
	}
	b.WriteString(status + "\n\n")

	row := func(label, value string) {
		b.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", s.Frames()))
	row("Position", fmt.Sprintf("%.1f, %.1f", s.Body.Coor.X, s.Body.Coor.Y))
	row("Velocity", fmt.Sprintf("%.2f, %.2f", s.Body.Vel.X, s.Body.Vel.Y))
	row("Pointer", fmt.Sprintf("%.0f, %.0f", s.Mouse.Vel.X, s.Mouse.Vel.Y))
	row("Contact", m.last.Contact.String())
	row("Elapsed", fmt.Sprintf("%.1fms", s.Timing.ElapsedSinceLastLoop))
	row("Viewport", fmt.Sprintf("%gx%g", s.View.Width, s.View.Height))
	row("Theme", Themes[m.theme].Name)

	if len(m.heights) > 1 {
		chart := asciigraph.Plot(m.heights, asciigraph.Height(5), asciigraph.Width(panelWidth-10), asciigraph.Caption("height"))
		b.WriteString(st.graph.Render(chart) + "\n")
	}

	b.WriteString(st.help.Render("drag the ball with the mouse\nSP:Pause R:Reset T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.canvas.Render(m.canvas.String()),
		st.stats.Render(b.String()),
	)
}

// Run opens the terminal frontend with mouse tracking and blocks until the
// user quits.
func Run(s *sim.Session) error {
	log.Printf("tui: viewport %gx%g, tick %v", s.View.Width, s.View.Height, clock.Interval)
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
