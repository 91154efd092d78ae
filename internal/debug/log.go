// Package debug shows the log file written by previous runs.
package debug

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs copies the log file at path to w. In live mode it starts at the end
// of the file and keeps following it while stdout is a terminal.
func Logs(w io.Writer, path string, enabled, live bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !enabled {
			return errors.New("logging is not enabled in config: enable logging to create log files")
		}
		if !live {
			return errors.New("no log file exists yet: try running some commands first")
		}
	}
	if live && !enabled {
		return errors.New("logging is not enabled in config: enable logging in config for live debugging")
	}

	cfg := tail.Config{
		MustExist: !live,
		Logger:    tail.DiscardingLogger,
	}
	if live {
		follow := isatty.IsTerminal(os.Stdout.Fd())
		cfg.Follow = follow
		cfg.ReOpen = follow
		cfg.Poll = true
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
		slog.Info("live tail started", "path", path)
	}

	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer t.Cleanup()

	for line := range t.Lines {
		if line.Err != nil {
			return line.Err
		}
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
