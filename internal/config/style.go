package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F080")) // yellow

	containerStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#CCCCCC"))
)

// MissingKeyError reports a config file without a required key
type MissingKeyError struct {
	Path string
	Key  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: %q is missing", e.Path, e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	return e.Key == KeyPathToTrash && target == ErrMissingTrashPath
}

// Render returns a boxed explanation suitable for a terminal
func (e *MissingKeyError) Render() string {
	message := errorStyle.Render("Error: ") +
		fmt.Sprintf("Field '%s' is missing", keyStyle.Render(e.Key))

	return containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		message,
		".",
		infoStyle.Render(fmt.Sprintf("Config file: %s", e.Path)),
		infoStyle.Render("Resetting restores the default settings."),
	))
}
