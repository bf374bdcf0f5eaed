package theme

import "github.com/charmbracelet/lipgloss"

// SubBoardTheme is the default palette.
type SubBoardTheme struct{}

func (t SubBoardTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#7d56f4", Light: "#5a32c8"}
}

func (t SubBoardTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ffd75f", Light: "#b57614"}
}

func (t SubBoardTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ff5f5f", Light: "#b01414"}
}

func (t SubBoardTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#87d75f", Light: "#2e7d14"}
}

func (t SubBoardTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#5fafff", Light: "#00529b"}
}

func (t SubBoardTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#eeeeee", Light: "#24292f"}
}

func (t SubBoardTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#8a8a8a", Light: "#737373"}
}

func (t SubBoardTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#3a3a3a", Light: "#e4e4e4"}
}

func (t SubBoardTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#585858", Light: "#bdbdbd"}
}

func (t SubBoardTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#7d56f4", Light: "#5a32c8"}
}

func init() {
	RegisterTheme("subboard", SubBoardTheme{})
}
