package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subitlab-buf/subboard-mng-gui/internal/backend"
	"github.com/subitlab-buf/subboard-mng-gui/internal/debug"
	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
)

// startAccept submits an accept decision for the selected paper.
func (m *App) startAccept() ([]tea.Msg, tea.Cmd) {
	if !m.selection.current.ok {
		return nil, nil
	}
	if !m.flights.start(opAccept) {
		return nil, nil
	}
	id := m.selection.current.id
	debug.Logf("accepting paper %d", id)
	return nil, tea.Batch(m.spinner.Tick, acceptPaperCmd(m.client, id))
}

// handleAcceptComplete applies the optimistic local outcome and always
// follows up with a reconciling refresh: the local decision value is
// provisional until the backend confirms it. A transport failure is
// recorded as rejected locally even though the backend may never have
// seen the request; the follow-up refresh restores the authoritative
// value either way.
func (m *App) handleAcceptComplete(msg acceptCompleteMsg) ([]tea.Msg, tea.Cmd) {
	m.flights.finish(opAccept)
	if p, ok := m.papers.Get(msg.id); ok {
		if msg.err != nil {
			debug.Logf("accept paper %d failed: %v", msg.id, msg.err)
			p.Decision = domain.DecisionRejected
		} else {
			p.Decision = domain.DecisionAccepted
		}
		m.papers.Upsert([]domain.Paper{p})
		m.syncViewport()
	}
	return []tea.Msg{refreshNowMsg{}}, nil
}

func acceptPaperCmd(client backend.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		err := client.AcceptPaper(ctx, id)
		return acceptCompleteMsg{id: id, err: err}
	}
}
