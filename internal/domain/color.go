package domain

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultAccentHex is used when a paper's accent color cannot be parsed.
const defaultAccentHex = "#888888"

// ParseAccentColor parses a paper's RGB accent color, accepting
// "RRGGBB" with or without a leading '#'. It never fails: anything
// unparseable falls back to a neutral gray, since the accent color is
// display-only.
func ParseAccentColor(s string) colorful.Color {
	trimmed := strings.TrimSpace(s)
	if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		fallback, _ := colorful.Hex(defaultAccentHex)
		return fallback
	}
	return c
}

// AccentHex returns the paper's accent color normalized to "#rrggbb".
func (p Paper) AccentHex() string {
	return ParseAccentColor(p.Color).Hex()
}
