package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/partix-sim/partix/internal/config"
	"github.com/partix-sim/partix/internal/scene"
	"github.com/partix-sim/partix/internal/world"
)

const (
	canvasWidth     = 72
	canvasHeight    = 22
	historyCapacity = 400
)

var particleGlyphs = []rune{'o', '*', '+', 'x', '@', '#'}

type TickMsg time.Time

// Model steps a world at a fixed frame rate and renders particles, a
// stats panel, and a kinetic energy sparkline.
type Model struct {
	cfg *config.Config
	w   *world.World

	canvas  *Canvas
	running bool
	fps     int

	energy        *energyProbe
	energyHistory []float64
	contactTotal  int
	err           error
}

// energyProbe tracks instantaneous kinetic energy through the observer
// hook.
type energyProbe struct {
	last     float64
	contacts int
}

func (e *energyProbe) OnStep(s world.Snapshot) {
	sum := 0.0
	for _, p := range s.Particles {
		if p.HasFiniteMass() {
			sum += 0.5 * p.Velocity.LenSq() / p.InverseMass
		}
	}
	e.last = sum
	e.contacts += len(s.Contacts)
}

func NewModel(cfg *config.Config, fps int) (Model, error) {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		cfg:           cfg,
		canvas:        NewCanvas(canvasWidth, canvasHeight, -6, 6, -1, 11),
		running:       true,
		fps:           fps,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) rebuild() error {
	w, _, err := scene.Build(m.cfg)
	if err != nil {
		return err
	}
	probe := &energyProbe{}
	w.AddObserver(probe)
	m.w = w
	m.energy = probe
	m.energyHistory = m.energyHistory[:0]
	m.contactTotal = 0
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.rebuild(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	case TickMsg:
		if m.running {
			if err := m.w.Step(m.cfg.Dt); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.energyHistory = append(m.energyHistory, m.energy.last)
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
			m.contactTotal = m.energy.contacts
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	for _, pl := range m.cfg.Planes {
		// Only horizontal floors render as a rule; other planes are
		// outside the canvas projection.
		if pl.Normal[1] != 0 && pl.Normal[0] == 0 && pl.Normal[2] == 0 {
			m.canvas.HLine(pl.Offset, '=')
		}
	}
	for i, p := range m.w.Particles() {
		m.canvas.Plot(p.Position.X, p.Position.Y, particleGlyphs[i%len(particleGlyphs)])
	}

	status := "running"
	if !m.running {
		status = "paused"
	}

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("partix live") + "\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("scene", m.cfg.Scene)
	row("status", status)
	row("t", fmt.Sprintf("%.2fs", m.w.Time()))
	row("dt", fmt.Sprintf("%.4fs", m.cfg.Dt))
	row("particles", fmt.Sprintf("%d", len(m.w.Particles())))
	row("contacts", fmt.Sprintf("%d", m.contactTotal))
	row("energy", fmt.Sprintf("%.3f", m.energy.last))

	if len(m.energyHistory) > 2 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption("kinetic energy"),
		)
		stats.WriteString(graphStyle.Render(graph))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)

	return main + "\n" + helpStyle.Render("space pause · r reset · q quit")
}

// Run blocks until the live view exits.
func Run(cfg *config.Config, fps int) error {
	m, err := NewModel(cfg, fps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
