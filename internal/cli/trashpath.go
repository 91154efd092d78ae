package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/babarot/brm/internal/config"
	"github.com/babarot/brm/internal/location"
	"github.com/babarot/brm/internal/shell"
)

func (c *CLI) PrintTrashPath() error {
	fmt.Fprintf(c.stdout, "This is the current trash directory.\n%s\n", c.engine.TrashDir())
	return nil
}

// ChangeTrashPath persists a new trash directory. It refuses while the
// current trash still holds restorable entries, as their records would
// point into a trash that is no longer used.
func (c *CLI) ChangeTrashPath(path string) error {
	slog.Debug("cli.set-trash-path started", "path", path)
	defer slog.Debug("cli.set-trash-path finished")

	abs, err := shell.ExpandPath(path)
	if err != nil {
		return &location.ConfigurationError{Key: config.KeyPathToTrash, Value: path, Err: err}
	}
	if abs == c.engine.TrashDir() {
		fmt.Fprintf(c.stdout, "The trash directory is already %s\n", abs)
		return nil
	}

	pending, err := c.engine.Pending()
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return fmt.Errorf("%d entries can still be restored from %s (%s): restore or empty them first",
			len(pending), c.engine.TrashDir(), strings.Join(pending, ", "))
	}

	dir, err := location.TrashDir(abs)
	if err != nil {
		return err
	}
	if err := config.SetTrashPath(c.option.Config, dir); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "The trash directory is now %s\n", dir)
	return nil
}
