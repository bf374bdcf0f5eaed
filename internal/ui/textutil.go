package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncateToWidth cuts a line to the given display width, appending an
// ellipsis when anything was dropped. Widths are cell widths, not byte
// counts, so wide runes survive.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}

// padToWidth pads a line with spaces so it reaches the provided width.
func padToWidth(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
