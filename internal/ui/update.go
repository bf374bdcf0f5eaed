package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subitlab-buf/subboard-mng-gui/internal/ui/theme"
)

// Update is the single point of mutation. Messages are drained through
// an explicit work queue: a handler may return follow-up messages,
// and a batchMsg expands into its members in list order. Everything
// queued is processed before control returns to the runtime, and the
// queue bounds stack depth no matter how deeply batches nest.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	queue := []tea.Msg{msg}
	var cmds []tea.Cmd

	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]

		if batch, ok := head.(batchMsg); ok {
			queue = append(append([]tea.Msg{}, batch.msgs...), queue...)
			continue
		}

		follow, cmd := m.dispatch(head)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if len(follow) > 0 {
			queue = append(append([]tea.Msg{}, follow...), queue...)
		}
	}

	switch len(cmds) {
	case 0:
		return m, nil
	case 1:
		return m, cmds[0]
	default:
		return m, tea.Batch(cmds...)
	}
}

// dispatch applies one message and may hand back follow-up messages
// for the queue. Handlers never block; anything touching the network
// returns a command and finishes later via its completion message.
func (m *App) dispatch(msg tea.Msg) ([]tea.Msg, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pollTickMsg:
		return m.handlePollTick()

	case pollArmMsg:
		return nil, m.armPoll(msg.delay)

	case refreshNowMsg:
		return m.startRefresh()

	case refreshCompleteMsg:
		return m.handleRefreshComplete(msg)

	case acceptCompleteMsg:
		return m.handleAcceptComplete(msg)

	case openPaperMsg:
		m.applySelection(msg)
		return nil, nil

	case spinner.TickMsg:
		if !m.flights.busy() {
			return nil, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return nil, cmd

	case flashTickMsg:
		if m.flash == "" {
			return nil, nil
		}
		if time.Since(m.flashStart) >= flashDuration {
			m.flash = ""
			return nil, nil
		}
		return nil, scheduleFlashTick()
	}

	return nil, nil
}

func (m *App) handleKey(msg tea.KeyMsg) ([]tea.Msg, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.moveUp(), nil

	case key.Matches(msg, m.keys.Down):
		return m.moveDown(), nil

	case key.Matches(msg, m.keys.Accept):
		return m.startAccept()

	case key.Matches(msg, m.keys.Refresh):
		// No-op while a call is in flight; startRefresh refuses anyway,
		// matching the desktop build hiding its refresh button.
		return []tea.Msg{refreshNowMsg{}}, nil

	case key.Matches(msg, m.keys.ClearDecided):
		m.papers.ClearDecided()
		m.reconcileSelection()
		m.syncViewport()
		return nil, nil

	case key.Matches(msg, m.keys.CopyEmail):
		return nil, m.copyEmail()

	case key.Matches(msg, m.keys.DarkMode):
		m.darkBackground = !m.darkBackground
		lipgloss.SetHasDarkBackground(m.darkBackground)
		m.syncViewport()
		return nil, nil

	case key.Matches(msg, m.keys.Theme):
		name := theme.CycleTheme()
		m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Current().Info())
		m.syncViewport()
		return nil, m.showFlash(fmt.Sprintf("theme: %s", name))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, nil
	}

	// Remaining keys (pgup/pgdn and friends) scroll the detail pane.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return nil, cmd
}

// copyEmail puts the selected paper's contact email on the clipboard.
func (m *App) copyEmail() tea.Cmd {
	if !m.selection.current.ok {
		return nil
	}
	p, ok := m.papers.Get(m.selection.current.id)
	if !ok {
		return nil
	}
	if p.Email == "" {
		return m.showFlash("no contact email")
	}
	if err := clipboard.WriteAll(p.Email); err != nil {
		return m.showFlash("clipboard unavailable")
	}
	return m.showFlash(fmt.Sprintf("copied %s", p.Email))
}

func (m *App) showFlash(text string) tea.Cmd {
	m.flash = text
	m.flashStart = time.Now()
	return scheduleFlashTick()
}
