// Package ui renders the briefing and forwards refresh and navigation
// events to the controller. The pipeline runs off the update loop as a
// tea.Cmd so the display stays responsive during a refresh.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/daybrief/internal/briefing"
	"github.com/nhle/daybrief/internal/model"
)

// Refresher runs one end-to-end refresh and returns the briefing text.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

// refreshDoneMsg carries the pipeline outcome back to the update loop.
type refreshDoneMsg struct {
	text string
	err  error
}

// Model is the root Bubble Tea model: a scrollable briefing, a status
// line, and the refresh/navigation keybindings.
type Model struct {
	ctrl      *briefing.Controller
	refresher Refresher
	keys      *KeyMap
	viewport  viewport.Model
	spinner   spinner.Model
	width     int
	height    int
	ready     bool
}

// New creates the root model around a controller and pipeline.
func New(ctrl *briefing.Controller, refresher Refresher) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorBlue)

	return Model{
		ctrl:      ctrl,
		refresher: refresher,
		keys:      DefaultKeyMap(),
		spinner:   sp,
	}
}

// Init returns no initial command; the first refresh is user-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window sizing, keybindings, and pipeline completion.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentWidth := msg.Width - 6
		contentHeight := msg.Height - 7
		if contentWidth < 10 {
			contentWidth = 10
		}
		if contentHeight < 3 {
			contentHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			if m.ctrl.RefreshRequested() {
				m.syncViewport()
				return m, tea.Batch(m.spinner.Tick, runRefresh(m.refresher))
			}
			return m, nil

		case key.Matches(msg, m.keys.Previous):
			if m.ctrl.ViewPrevious() {
				m.syncViewport()
			}
			return m, nil

		case key.Matches(msg, m.keys.Current):
			if m.ctrl.ViewCurrent() {
				m.syncViewport()
			}
			return m, nil
		}

	case refreshDoneMsg:
		m.ctrl.RefreshCompleted(msg.text, msg.err)
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Mode() == briefing.ModeRefreshing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title, the briefing viewport, the status line, and
// the key hints.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	state := m.ctrl.State()

	header := headerStyle.Render("daybrief")

	status := state.LastUpdatedLabel
	if m.ctrl.Mode() == briefing.ModeRefreshing {
		status = m.spinner.View() + " " + status
	}
	if state.Active == model.ActivePrevious {
		status = slotStyle.Render("[previous] ") + status
	}

	help := helpStyle.Render("r refresh • h/← previous • l/→ current • j/k scroll • q quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		summaryStyle.Render(m.viewport.View()),
		statusStyle.Render(status),
		help,
	)
}

// syncViewport pushes the controller's current summary into the
// viewport, keeping scroll position at the top for new content.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.ctrl.State().Summary)
	m.viewport.GotoTop()
}

// runRefresh executes the pipeline off the update loop and delivers
// the outcome as a message. Errors are part of the message, never a
// panic or dropped result; the controller always hears back.
func runRefresh(r Refresher) tea.Cmd {
	return func() tea.Msg {
		text, err := r.Refresh(context.Background())
		return refreshDoneMsg{text: text, err: err}
	}
}
