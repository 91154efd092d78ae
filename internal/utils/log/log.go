package log

import (
	"io"
	"log/slog"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const timeFormat = "2006-01-02 15:04:05"

// levelLabels pads every level to the same width so messages line up
var levelLabels = sync.OnceValue(func() *Styles {
	styles := charmlog.DefaultStyles()
	for level, style := range levelStyles {
		styles.Levels[level] = style.SetString(levelNames[level]).Width(5)
	}
	return styles
})

// New creates a slog logger backed by charmbracelet/log. Colors are kept
// even when writing to a file so that --debug can replay them.
func New(opts ...Option) *slog.Logger {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	handler := charmlog.NewWithOptions(s.out, charmlog.Options{
		Level:           s.level,
		ReportCaller:    s.caller,
		ReportTimestamp: s.timestamp,
		TimeFormat:      timeFormat,
	})
	handler.SetStyles(levelLabels())
	handler.SetColorProfile(termenv.ANSI256)

	logger := slog.New(handler)
	if s.setDefault {
		charmlog.SetDefault(handler)
		slog.SetDefault(logger)
	}
	return logger
}

// Discard installs a default logger that drops everything
func Discard() {
	slog.SetDefault(New(UseOutput(io.Discard), AsDefault()))
}
