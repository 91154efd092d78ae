package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/babarot/brm/internal/trash"
	"github.com/babarot/brm/internal/ui"
	"github.com/samber/lo"
)

func (c *CLI) Restore(names []string) error {
	slog.Debug("cli.restore started")
	defer slog.Debug("cli.restore finished")

	if len(names) == 0 {
		picked, err := c.pickTrashed()
		if err != nil {
			return err
		}
		names = picked
	}
	if len(names) == 0 {
		slog.Debug("nothing picked")
		return nil
	}

	results := c.engine.RestoreAll(names)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		c.printOutcome(res)
	}

	return c.finish(results)
}

// pickTrashed lets the user choose among the restorable entries
func (c *CLI) pickTrashed() ([]string, error) {
	entries, err := c.engine.List()
	if err != nil {
		return nil, err
	}

	choices := lo.FilterMap(entries, func(e trash.Entry, _ int) (ui.Choice, bool) {
		return ui.Choice{Value: e.Name, Description: e.OriginalPath}, e.Restorable()
	})

	picked, err := ui.Pick("Choose entries to restore", choices)
	if errors.Is(err, ui.ErrNothingToPick) {
		return nil, errors.New("no files in trash")
	}
	return picked, err
}

func formatErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	msg := fmt.Sprintf("%d errors occurred:\n", len(errs))
	for _, err := range errs {
		msg += fmt.Sprintf("  * %v\n", err)
	}
	return errors.New(msg)
}
