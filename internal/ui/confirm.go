package ui

import (
	"log/slog"
	"os"

	"github.com/babarot/brm/internal/ui/components/confirm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Confirmer asks on the terminal. Without a terminal every prompt is
// declined.
type Confirmer struct {
	// Strict requires typing "YES" instead of a single key
	Strict bool
}

func (c Confirmer) Confirm(prompt string) bool {
	if !isTerminal() {
		slog.Warn("stdin is not a terminal, declining", "prompt", prompt)
		return false
	}

	m := confirm.New(prompt)
	if c.Strict {
		m = confirm.NewStrict(prompt)
	}

	p := tea.NewProgram(&m, tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}

	slog.Debug("confirmation answered", "prompt", prompt, "decision", m.Selected())
	return m.Selected().IsAccepted()
}

func isTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
