package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
)

// Empty permanently deletes the contents of the trash
func (c *CLI) Empty() error {
	slog.Debug("cli.empty started")
	defer slog.Debug("cli.empty finished")

	report, err := c.engine.Empty()
	if err != nil {
		return err
	}

	if report.Skipped {
		fmt.Fprintln(c.stdout, "Emptying canceled.")
		return nil
	}

	for _, err := range report.Errors {
		fmt.Fprintf(c.stderr, "%s %v\n", color.RedString("error:"), err)
	}

	if len(report.Errors) > 0 {
		fmt.Fprintf(c.stdout, "Removed %d entries, %d could not be removed.\n", len(report.Removed), len(report.Errors))
		if len(report.Removed) == 0 {
			return formatErrors(report.Errors)
		}
		return nil
	}

	fmt.Fprintf(c.stdout, "Successfully removed %d entries.\n", len(report.Removed))
	return nil
}
