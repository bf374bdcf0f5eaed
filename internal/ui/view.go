package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
)

// resize recomputes the pane layout after the terminal changed size.
func (m *App) resize(width, height int) {
	m.width = width
	m.height = height

	listWidth := width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	detailWidth := width - listWidth - 4 // two bordered panes
	if detailWidth < minViewportWidth {
		detailWidth = minViewportWidth
	}
	bodyHeight := height - 4 // header, status, help, border slack
	if bodyHeight < minViewportHeight {
		bodyHeight = minViewportHeight
	}

	m.viewport.Width = detailWidth
	m.viewport.Height = bodyHeight

	m.ready = true
	m.syncViewport()
}

// syncViewport rebuilds the detail pane content for the current
// selection.
func (m *App) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.detailContent())
}

func (m *App) View() string {
	if !m.ready {
		return "Loading SubBoard..."
	}

	header := m.renderHeader()
	list := m.renderList()
	detail := m.viewport.View()

	listHeight := m.viewport.Height
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		stylePaneFocused().Width(m.listWidth()).Height(listHeight).Render(list),
		stylePane().Width(m.viewport.Width).Height(listHeight).Render(detail),
	)

	status := m.renderStatus()
	helpView := m.help.View(m.keys)

	return strings.Join([]string{header, body, status, helpView}, "\n")
}

func (m *App) listWidth() int {
	w := m.width / 3
	if w < minListWidth {
		w = minListWidth
	}
	return w
}

func (m *App) renderHeader() string {
	title := "SUBBOARD"
	if m.version != "" {
		title = fmt.Sprintf("SUBBOARD v%s", m.version)
	}
	left := styleAppHeader().Render(title)

	if id, ok := m.Selected(); ok {
		if p, found := m.papers.Get(id); found {
			left += " " + styleNormalRow().Render(fmt.Sprintf("Paper from %s", p.Name))
		}
	}
	if m.flights.busy() {
		left += " " + m.spinner.View()
	}
	return left
}

func (m *App) renderList() string {
	ordered := m.papers.OrderedDescending()
	if len(ordered) == 0 {
		return styleMuted().Render(" no pending papers")
	}

	width := m.listWidth()
	rows := make([]string, 0, len(ordered))
	for _, p := range ordered {
		rows = append(rows, m.renderListRow(p, width))
	}
	return strings.Join(rows, "\n")
}

func (m *App) renderListRow(p domain.Paper, width int) string {
	icon, iconStyle := "•", styleMuted()
	switch p.Decision {
	case domain.DecisionAccepted:
		icon, iconStyle = "✓", styleAccepted()
	case domain.DecisionRejected:
		icon, iconStyle = "✗", styleRejected()
	}

	when := formatRelativeTime(p.SubmittedAt)
	// icon + space + label + space + timestamp
	labelWidth := width - lipgloss.Width(when) - 4
	label := truncateToWidth(fmt.Sprintf("%s: %s", p.Name, p.Info), labelWidth)

	if id, ok := m.Selected(); ok && id == p.ID {
		plain := fmt.Sprintf("%s %s %s", icon, padToWidth(label, labelWidth), when)
		return styleSelectedRow().Render(padToWidth(plain, width))
	}
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(icon),
		styleNormalRow().Render(padToWidth(label, labelWidth)),
		styleMuted().Render(when))
}

func (m *App) detailContent() string {
	id, ok := m.Selected()
	if !ok {
		return styleMuted().Render("\n  Select a paper with ↑/↓ (or j/k).")
	}
	p, found := m.papers.Get(id)
	if !found {
		return styleMuted().Render("\n  Paper no longer present; refresh in progress.")
	}

	var b strings.Builder

	chip := styleAccentChip(p.AccentHex()).Render(fmt.Sprintf("Paper #%d · %s", p.ID, p.Decision))
	b.WriteString(chip)
	b.WriteString("\n")

	b.WriteString(renderMarkdown(p.Info, m.viewport.Width-2, m.darkBackground))
	b.WriteString("\n")

	b.WriteString(styleField().Render("From") + styleNormalRow().Render(p.Name) + "\n")
	if p.Email != "" {
		b.WriteString(styleField().Render("Email") + styleNormalRow().Render(p.Email) + "\n")
	}
	b.WriteString(styleField().Render("Sent") +
		styleMuted().Render(fmt.Sprintf("%s (%s)", formatSubmittedAt(p.SubmittedAt), formatRelativeTime(p.SubmittedAt))) + "\n")

	if p.Pending() {
		b.WriteString("\n" + styleInfo().Render("Press enter to accept this paper."))
	}

	return b.String()
}

func (m *App) renderStatus() string {
	if m.flash != "" {
		return styleInfo().Render(" " + m.flash)
	}
	parts := []string{fmt.Sprintf(" %d papers", m.papers.Len())}
	if m.lastRefreshNote != "" {
		parts = append(parts, m.lastRefreshNote)
	}
	if !m.lastRefreshAt.IsZero() {
		parts = append(parts, fmt.Sprintf("refreshed %s", formatRelativeTime(m.lastRefreshAt)))
	}
	return styleMuted().Render(strings.Join(parts, " • "))
}
