package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subitlab-buf/subboard-mng-gui/internal/backend"
	"github.com/subitlab-buf/subboard-mng-gui/internal/debug"
)

const fetchTimeout = 20 * time.Second

// handlePollTick is one wake of the periodic refresh loop. If another
// backend call is already in flight it backs off and re-checks sooner
// instead of piling on a duplicate fetch; otherwise it asks for a
// refresh and re-arms at the full interval, both dispatched before
// control returns.
func (m *App) handlePollTick() ([]tea.Msg, tea.Cmd) {
	if m.flights.busy() {
		return nil, m.armPoll(pollBackoffInterval)
	}
	return []tea.Msg{batchMsg{msgs: []tea.Msg{
		refreshNowMsg{},
		pollArmMsg{delay: m.pollInterval},
	}}}, nil
}

// startRefresh begins a pending-papers fetch unless something is
// already talking to the backend.
func (m *App) startRefresh() ([]tea.Msg, tea.Cmd) {
	if !m.flights.start(opRefresh) {
		return nil, nil
	}
	debug.Log("refreshing papers")
	return nil, tea.Batch(m.spinner.Tick, fetchPapersCmd(m.client))
}

// handleRefreshComplete folds a fetch result into the store. Failures
// are logged and applied as an empty batch, leaving the store as it
// was.
func (m *App) handleRefreshComplete(msg refreshCompleteMsg) ([]tea.Msg, tea.Cmd) {
	m.flights.finish(opRefresh)
	if msg.err != nil {
		debug.Logf("refresh failed: %v", msg.err)
		m.lastRefreshNote = fmt.Sprintf("refresh failed: %v", msg.err)
		m.papers.Upsert(nil)
		return nil, nil
	}
	m.papers.Upsert(msg.papers)
	m.lastRefreshAt = time.Now()
	m.lastRefreshNote = fmt.Sprintf("%d papers", m.papers.Len())
	m.reconcileSelection()
	m.syncViewport()
	return nil, nil
}

func fetchPapersCmd(client backend.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		papers, err := client.PendingPapers(ctx)
		return refreshCompleteMsg{papers: papers, err: err}
	}
}
