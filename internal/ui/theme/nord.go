package theme

import "github.com/charmbracelet/lipgloss"

// NordTheme implements the Nord color scheme.
type NordTheme struct{}

func (t NordTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"}
}

func (t NordTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ebcb8b", Light: "#d08770"}
}

func (t NordTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bf616a", Light: "#bf616a"}
}

func (t NordTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#a3be8c", Light: "#5e8c3a"}
}

func (t NordTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#81a1c1", Light: "#5e81ac"}
}

func (t NordTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#eceff4", Light: "#2e3440"}
}

func (t NordTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#7b88a1", Light: "#6b7386"}
}

func (t NordTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#d8dee9"}
}

func (t NordTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#4c566a", Light: "#aab2c4"}
}

func (t NordTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"}
}

func init() {
	RegisterTheme("nord", NordTheme{})
}
