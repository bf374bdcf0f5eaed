package ui

import tea "github.com/charmbracelet/bubbletea"

// ref builds a paperRef from a store.Neighbors result pair.
func ref(id int, ok bool) paperRef {
	return paperRef{id: id, ok: ok}
}

// captureNeighbors looks up a paper's neighbors in the live display
// order.
func (m *App) captureNeighbors(id int) (before, after paperRef) {
	prev, next, hasPrev, hasNext := m.papers.Neighbors(id)
	return ref(prev, hasPrev), ref(next, hasNext)
}

// applySelection records a selection along with the neighbor ids that
// were captured when it was made.
func (m *App) applySelection(msg openPaperMsg) {
	m.selection = selectionState{
		current: paperRef{id: msg.target, ok: true},
		before:  msg.before,
		after:   msg.after,
	}
	m.syncViewport()
}

// moveUp selects the captured predecessor, recomputing its neighbors
// from the live order. At the top of the list it is a no-op.
func (m *App) moveUp() []tea.Msg {
	if !m.selection.current.ok {
		return m.selectFirst()
	}
	if !m.selection.before.ok {
		return nil
	}
	target := m.selection.before.id
	before, after := m.captureNeighbors(target)
	return []tea.Msg{openPaperMsg{before: before, target: target, after: after}}
}

// moveDown selects the captured successor, symmetrically to moveUp.
func (m *App) moveDown() []tea.Msg {
	if !m.selection.current.ok {
		return m.selectFirst()
	}
	if !m.selection.after.ok {
		return nil
	}
	target := m.selection.after.id
	before, after := m.captureNeighbors(target)
	return []tea.Msg{openPaperMsg{before: before, target: target, after: after}}
}

// selectFirst picks the most recent paper when nothing is selected yet.
// The desktop build relied on a mouse click for the first selection;
// the console starts from the top of the list instead.
func (m *App) selectFirst() []tea.Msg {
	id, ok := m.papers.First()
	if !ok {
		return nil
	}
	before, after := m.captureNeighbors(id)
	return []tea.Msg{openPaperMsg{before: before, target: id, after: after}}
}

// reconcileSelection re-captures the selection's neighbors after the
// record set changed underneath it. If the selected paper is gone, the
// selection is dropped entirely.
func (m *App) reconcileSelection() {
	if !m.selection.current.ok {
		return
	}
	id := m.selection.current.id
	if _, ok := m.papers.Get(id); !ok {
		m.selection = selectionState{}
		return
	}
	m.selection.before, m.selection.after = m.captureNeighbors(id)
}
