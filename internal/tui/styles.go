// Package tui implements the full-screen terminal UI: the directory browser,
// message threads, the director dashboard, and the watch footer.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Porch palette: lamp amber on evening blue, with green reserved for lit
// porch lights.
var (
	lightBackground = lipgloss.Color("#faf6ef")
	lightForeground = lipgloss.Color("#2d3142")
	lightPrimary    = lipgloss.Color("#b4690e")
	lightMuted      = lipgloss.Color("#9a958a")
	lightBorder     = lipgloss.Color("#d8d2c4")

	darkBackground = lipgloss.Color("#1b2431")
	darkForeground = lipgloss.Color("#f0ead6")
	darkPrimary    = lipgloss.Color("#ffb347")
	darkMuted      = lipgloss.Color("#6c7586")
	darkBorder     = lipgloss.Color("#39455c")

	litGreen = lipgloss.Color("#7bb661")
	errorRed = lipgloss.Color("#e05d5d")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: lightBackground,
		Foreground: lightForeground,
		Primary:    lightPrimary,
		Muted:      lightMuted,
		Border:     lightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: darkBackground,
		Foreground: darkForeground,
		Primary:    darkPrimary,
		Muted:      darkMuted,
		Border:     darkBorder,
		IsDark:     true,
	}
}

// ThemeByName picks the configured theme. Anything but "light" means dark;
// the porch looks better at dusk.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styled components shared by the pages.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Footer lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Prompt lipgloss.Style

	Lit   lipgloss.Style
	Badge lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates a Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Background).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Lit: lipgloss.NewStyle().
			Foreground(litGreen).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Background).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(errorRed).
			Bold(true),
	}
}
