package ui

import (
	"fmt"
	"time"
)

var timeNow = time.Now

// formatRelativeTime returns a compact description of how long ago t
// occurred, for the paper list's right-hand column.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	now := timeNow()

	// Future timestamps fall back to absolute dates.
	if t.After(now) {
		return formatAbsoluteTime(t, now)
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		minutes := int(diff / time.Minute)
		if minutes < 1 {
			minutes = 1
		}
		return fmt.Sprintf("%dm ago", minutes)
	case diff < 24*time.Hour:
		hours := int(diff / time.Hour)
		return fmt.Sprintf("%dh ago", hours)
	case diff < 100*24*time.Hour:
		days := int(diff / (24 * time.Hour))
		return fmt.Sprintf("%dd ago", days)
	default:
		return formatAbsoluteTime(t, now)
	}
}

func formatAbsoluteTime(t, now time.Time) string {
	local := t.In(now.Location())
	if local.Year() == now.Year() {
		return local.Format("Jan 2")
	}
	return local.Format("Jan '06")
}

// formatSubmittedAt is the long form shown in the detail pane.
func formatSubmittedAt(t time.Time) string {
	return t.Format(time.RFC1123Z)
}
