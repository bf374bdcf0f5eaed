package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/subitlab-buf/subboard-mng-gui/internal/ui/theme"
)

// Styles are derived from the active theme on demand; the theme can
// change at runtime via the theme key.

func styleAppHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Dark: "#ffffff", Light: "#ffffff"}).
		Background(t.Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleSelectedRow() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.BackgroundSecondary()).
		Foreground(t.Text()).
		Bold(true)
}

func styleNormalRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleAccepted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success())
}

func styleRejected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error())
}

func styleInfo() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Info())
}

func stylePane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().BorderNormal())
}

func stylePaneFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Current().BorderFocused())
}

func styleField() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Info()).
		Bold(true).
		Width(10)
}

// styleAccentChip paints a paper's summary header with its own accent
// color. Text stays dark regardless of theme so any accent reads.
func styleAccentChip(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(hex)).
		Padding(0, 1).
		Bold(true)
}

// renderMarkdown renders a paper summary for the detail pane. Render
// failures fall back to the raw text; the detail pane must never error
// out over formatting.
func renderMarkdown(content string, width int, dark bool) string {
	if width <= 0 {
		width = minViewportWidth
	}
	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(content, width)
	}
	out, err := renderer.Render(content)
	if err != nil {
		return wordwrap.String(content, width)
	}
	return out
}
