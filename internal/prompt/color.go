package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colors maps template color names to ANSI palette indexes.
var colors = map[string]lipgloss.Color{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"gray":          "8",
	"grey":          "8",
	"blackbright":   "8",
	"redbright":     "9",
	"greenbright":   "10",
	"yellowbright":  "11",
	"bluebright":    "12",
	"magentabright": "13",
	"cyanbright":    "14",
	"whitebright":   "15",
}

// Style returns the text style for a template color name. Names are matched
// case-insensitively ("blueBright" and "bluebright" are the same); unknown or
// empty names get the plain style.
func Style(color string) lipgloss.Style {
	c, ok := colors[strings.ToLower(strings.TrimSpace(color))]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// KnownColor reports whether color has a mapping other than the plain style.
func KnownColor(color string) bool {
	_, ok := colors[strings.ToLower(strings.TrimSpace(color))]
	return ok
}
