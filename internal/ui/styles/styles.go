package styles

import "github.com/charmbracelet/lipgloss"

// Color chart: https://github.com/muesli/termenv

const (
	Cursor   = lipgloss.Color("#AD58B4") // purple
	Selected = lipgloss.Color("#5FB458") // green
)

var Dimmed = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}

var Title = lipgloss.NewStyle().
	Background(lipgloss.Color("#3C3C3C")).
	Foreground(lipgloss.Color("#EEEEDD")).
	Bold(true).
	Padding(0, 1)
