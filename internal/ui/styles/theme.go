// Package styles defines the lipgloss themes and style builders used by
// the interactive browser chrome. The swatch bytes themselves come from
// the color package; these styles only dress the UI around them.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the browser chrome
type Theme struct {
	Name string

	// Basic colors
	Foreground lipgloss.Color
	Muted      lipgloss.Color

	// Chrome colors
	Primary lipgloss.Color
	Border  lipgloss.Color

	// Tab colors
	ActiveTabFg lipgloss.Color
	ActiveTabBg lipgloss.Color
}

// PredefinedThemes contains the built-in themes
var PredefinedThemes = map[string]*Theme{
	"dark": {
		Name:        "dark",
		Foreground:  lipgloss.Color("15"), // White
		Muted:       lipgloss.Color("8"),  // Gray
		Primary:     lipgloss.Color("12"), // Blue
		Border:      lipgloss.Color("8"),  // Gray
		ActiveTabFg: lipgloss.Color("15"), // White
		ActiveTabBg: lipgloss.Color("12"), // Blue
	},
	"light": {
		Name:        "light",
		Foreground:  lipgloss.Color("0"), // Black
		Muted:       lipgloss.Color("8"), // Gray
		Primary:     lipgloss.Color("4"), // Dark Blue
		Border:      lipgloss.Color("7"), // Light Gray
		ActiveTabFg: lipgloss.Color("15"), // White
		ActiveTabBg: lipgloss.Color("4"),  // Dark Blue
	},
}

// DefaultTheme returns the theme used when no preference has been set.
func DefaultTheme() *Theme {
	return PredefinedThemes["dark"]
}

// Toggle returns the other built-in theme: light for dark, dark for
// light.
func (t *Theme) Toggle() *Theme {
	if t.Name == "dark" {
		return PredefinedThemes["light"]
	}
	return PredefinedThemes["dark"]
}

// ActiveTab returns the style for the selected tab label.
func (t *Theme) ActiveTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.ActiveTabFg).
		Background(t.ActiveTabBg).
		Bold(true).
		Padding(0, 1)
}

// InactiveTab returns the style for unselected tab labels.
func (t *Theme) InactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)
}

// Heading returns the style for section headings.
func (t *Theme) Heading() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
}

// StatusBar returns the style for the bottom status line.
func (t *Theme) StatusBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Muted)
}

// Selected returns the style marking the selected palette row.
func (t *Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
}
