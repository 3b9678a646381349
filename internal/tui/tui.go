// internal/tui/tui.go
// Package tui provides the interactive chart browser.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/mwiater/fightsongs/internal/logging"
	"github.com/mwiater/fightsongs/internal/nav"
	"github.com/mwiater/fightsongs/internal/render"
	"github.com/mwiater/fightsongs/internal/render/termchart"
)

const (
	headerHeight = 2
	footerHeight = 3
)

var (
	headerStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	positionStyle = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("40")).Padding(0, 1).MarginLeft(1)
	captionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
)

// model is the Bubble Tea model for the chart browser.
type model struct {
	ctrl     *nav.Controller
	backend  *termchart.Backend
	canvas   *bytes.Buffer
	viewport viewport.Model
	help     help.Model
	err      error
	width    int
	height   int
}

// newModel builds the browser over descriptors and draws the first chart.
func newModel(descriptors []charts.Descriptor) (*model, error) {
	m := &model{
		backend:  termchart.New(0, 0),
		canvas:   &bytes.Buffer{},
		viewport: viewport.New(80, 20),
		help:     help.New(),
	}
	ctrl, err := nav.New(descriptors, render.Func(m.backend, m.canvas))
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	m.err = ctrl.Start()
	m.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.err = m.ctrl.Next()
			logging.LogDebug("[TUI] next -> %d %s", m.ctrl.Index(), m.ctrl.Current().Kind)
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Previous):
			m.err = m.ctrl.Previous()
			logging.LogDebug("[TUI] previous -> %d %s", m.ctrl.Index(), m.ctrl.Current().Kind)
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.backend.Width = max(msg.Width-24, 10)
		m.backend.Height = max(m.viewport.Height-8, 5)
		m.err = render.Render(m.backend, m.canvas, m.ctrl.Current())
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh copies the canvas and caption into the viewport.
func (m *model) refresh() {
	var b strings.Builder
	b.WriteString(m.canvas.String())
	if caption := m.ctrl.Current().Caption; caption != "" {
		width := m.width
		if width <= 0 {
			width = 80
		}
		b.WriteString("\n")
		b.WriteString(captionStyle.Width(width - 2).Render(caption))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m *model) View() string {
	current := m.ctrl.Current()
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("Fight Songs"),
		positionStyle.Render(fmt.Sprintf("%d / %d", m.ctrl.Index()+1, m.ctrl.Len())),
		positionStyle.Render(string(current.Kind)),
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Start runs the browser until the user quits or ctx is cancelled. Log output
// goes to logPath only while the alternate screen is active.
func Start(ctx context.Context, descriptors []charts.Descriptor, logPath string) error {
	if err := logging.InitFile(logPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	m, err := newModel(descriptors)
	if err != nil {
		return err
	}
	logging.LogEvent("[TUI] browsing %d charts", m.ctrl.Len())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
