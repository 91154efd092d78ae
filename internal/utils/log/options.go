package log

import (
	"io"
	"os"
)

type settings struct {
	out        io.Writer
	level      Level
	caller     bool
	timestamp  bool
	setDefault bool
}

func defaultSettings() settings {
	return settings{
		out:       os.Stderr,
		level:     InfoLevel,
		timestamp: true,
	}
}

// Option customizes a logger created by New
type Option func(*settings)

func UseOutput(w io.Writer) Option {
	return func(s *settings) {
		s.out = w
	}
}

func UseLevel(l Level) Option {
	return func(s *settings) {
		s.level = l
	}
}

// UseReportCaller adds the calling file and line to every entry
func UseReportCaller(report bool) Option {
	return func(s *settings) {
		s.caller = report
	}
}

func UseReportTimestamp(report bool) Option {
	return func(s *settings) {
		s.timestamp = report
	}
}

// AsDefault installs the logger as slog's default
func AsDefault() Option {
	return func(s *settings) {
		s.setDefault = true
	}
}
