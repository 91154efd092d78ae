package log

import "github.com/charmbracelet/lipgloss"

var levelStyles = map[Level]lipgloss.Style{
	DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("196")).Bold(true),
}

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}
