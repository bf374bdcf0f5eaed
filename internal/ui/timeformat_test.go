package ui

import (
	"testing"
	"time"
)

func stubNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2026, time.December, 15, 12, 0, 0, 0, time.UTC)
	stubNow(t, now)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero time", time.Time{}, ""},
		{"seconds ago", now.Add(-30 * time.Second), "now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-49 * time.Hour), "2d ago"},
		{"months ago same year", now.Add(-120 * 24 * time.Hour), "Aug 17"},
		{"previous year", now.Add(-500 * 24 * time.Hour), "Aug '25"},
		{"future", now.Add(2 * time.Hour), "Dec 15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.at); got != tt.want {
				t.Fatalf("formatRelativeTime(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestFormatSubmittedAt(t *testing.T) {
	at := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
	want := "Sun, 15 Mar 2026 09:30:00 +0000"
	if got := formatSubmittedAt(at); got != want {
		t.Fatalf("formatSubmittedAt = %q, want %q", got, want)
	}
}
