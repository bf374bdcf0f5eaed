package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
)

// batchMsg carries several messages that must be dispatched in list
// order before control returns to the runtime. Members may themselves
// be batches; Update drains them iteratively through a work queue so
// nesting never grows the stack.
type batchMsg struct {
	msgs []tea.Msg
}

// pollTickMsg is the periodic refresh loop waking up.
type pollTickMsg struct{}

// pollArmMsg re-arms the refresh loop with the given delay.
type pollArmMsg struct {
	delay time.Duration
}

// refreshNowMsg asks for an immediate resynchronization from the backend.
type refreshNowMsg struct{}

// refreshCompleteMsg delivers the result of a pending-papers fetch.
type refreshCompleteMsg struct {
	papers []domain.Paper
	err    error
}

// acceptCompleteMsg delivers the outcome of an accept call.
type acceptCompleteMsg struct {
	id  int
	err error
}

// openPaperMsg selects a paper, capturing its neighbors in the display
// order at selection time.
type openPaperMsg struct {
	before paperRef
	target int
	after  paperRef
}

// schedulePoll arms the refresh loop. A non-positive delay wakes it on
// the next pass through the runtime, which is how the loop starts hot.
func schedulePoll(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return pollTickMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return pollTickMsg{} })
}

type flashTickMsg struct{}

func scheduleFlashTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return flashTickMsg{}
	})
}
