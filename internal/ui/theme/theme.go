// Package theme provides a semantic color system for the SubBoard UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the UI draws with.
// All methods return AdaptiveColor so the palette follows the
// terminal's light or dark background.
type Theme interface {
	Primary() lipgloss.AdaptiveColor // Main accent (header bg, focused borders)
	Accent() lipgloss.AdaptiveColor  // Highlights (selected paper, ids)

	Error() lipgloss.AdaptiveColor   // Failed accepts, rejected papers
	Success() lipgloss.AdaptiveColor // Accepted papers
	Info() lipgloss.AdaptiveColor    // Informational status text

	Text() lipgloss.AdaptiveColor      // Primary text
	TextMuted() lipgloss.AdaptiveColor // De-emphasized text (timestamps, hints)

	BackgroundSecondary() lipgloss.AdaptiveColor // Selected rows

	BorderNormal() lipgloss.AdaptiveColor  // Default pane borders
	BorderFocused() lipgloss.AdaptiveColor // Focused pane borders
}
