package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
)

// fakeClient scripts backend responses for tests. Calls run
// synchronously when a command is executed, so no synchronization is
// needed beyond what the tests themselves do.
type fakeClient struct {
	papers     []domain.Paper
	pendingErr error
	acceptErr  error

	pendingCalls int
	acceptedIDs  []int
}

func (f *fakeClient) PendingPapers(ctx context.Context) ([]domain.Paper, error) {
	f.pendingCalls++
	if f.pendingErr != nil {
		return nil, f.pendingErr
	}
	out := make([]domain.Paper, len(f.papers))
	copy(out, f.papers)
	return out, nil
}

func (f *fakeClient) AcceptPaper(ctx context.Context, id int) error {
	f.acceptedIDs = append(f.acceptedIDs, id)
	return f.acceptErr
}

// newTestApp builds an App wired to the fake client, with the poll
// scheduler replaced by a recorder so tests never sleep on a timer.
func newTestApp(client *fakeClient) (*App, *[]time.Duration) {
	app := NewApp(Config{Client: client})
	delays := &[]time.Duration{}
	app.armPoll = func(d time.Duration) tea.Cmd {
		*delays = append(*delays, d)
		return nil
	}
	return app, delays
}

// runCmd executes a command tree and collects every message it
// produces, expanding runtime batches along the way. Tick-based
// commands are never executed by tests; the scheduler stub above
// returns nil instead.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliver feeds a message through Update and then feeds back every
// completion message its commands produce, until the model goes
// quiet. It approximates the Bubble Tea runtime for a single
// interaction.
func deliver(t *testing.T, m *App, msg tea.Msg) {
	t.Helper()
	pending := []tea.Msg{msg}
	for i := 0; len(pending) > 0; i++ {
		if i > 32 {
			t.Fatalf("message loop did not settle")
		}
		head := pending[0]
		pending = pending[1:]
		_, cmd := m.Update(head)
		pending = append(pending, runCmd(cmd)...)
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func paper(id int, name string, at time.Time) domain.Paper {
	return domain.Paper{
		ID:          id,
		Name:        name,
		Info:        "hello",
		SubmittedAt: at,
	}
}

// twoPapers is the standard fixture: id 2 is newer than id 1, so the
// display order is [2, 1].
func twoPapers(now time.Time) []domain.Paper {
	return []domain.Paper{
		paper(1, "ada", now),
		paper(2, "grace", now.Add(time.Minute)),
	}
}
