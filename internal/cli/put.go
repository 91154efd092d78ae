package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"
	"github.com/babarot/brm/internal/trash"
	"github.com/babarot/brm/internal/ui"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

func (c *CLI) Put(args []string) error {
	slog.Debug("cli.put started")
	defer slog.Debug("cli.put finished")

	if c.option.Fzf {
		picked, err := c.pickFiles()
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			return nil
		}
		args = append(args, picked...)
	}

	if len(args) == 0 {
		return errors.New("too few arguments")
	}

	results := c.engine.TrashAll(args, c.option.Force)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		c.printOutcome(res)
	}

	return c.finish(results)
}

func (c *CLI) printOutcome(res trash.Result) {
	green := color.New(color.FgHiGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	switch res.Outcome.Action {
	case trash.ActionTrashed:
		fmt.Fprintf(c.stdout, "%s %s\n", green("trashed"), res.Target)
		// renamed because of a name collision
		if res.Outcome.Name != filepath.Base(res.Outcome.Path) {
			fmt.Fprintln(c.stdout, faint(fmt.Sprintf("  restore with: brm -r %s", shellescape.Quote(res.Outcome.Name))))
		}
	case trash.ActionDeleted:
		fmt.Fprintf(c.stdout, "%s %s\n", yellow("deleted"), res.Target)
	case trash.ActionRestored:
		if c.config.Restore.Verbose {
			fmt.Fprintf(c.stdout, "%s %s\n", green("restored"), res.Outcome.Path)
		}
	case trash.ActionSkipped:
		fmt.Fprintf(c.stdout, "%s %s\n", faint("skipped"), res.Target)
	}
}

// finish prints the failures of a batch. Only a batch where nothing
// succeeded is an error.
func (c *CLI) finish(results trash.Results) error {
	failed := results.Failed()
	if len(failed) == 0 {
		return nil
	}

	red := color.New(color.FgRed).SprintFunc()
	for _, res := range failed {
		fmt.Fprintf(c.stderr, "%s %s: %v\n", red("error:"), res.Target, res.Err)
		if hint := hintFor(res.Err); hint != "" {
			fmt.Fprintf(c.stderr, "  %s\n", hint)
		}
	}

	if results.AllFailed() {
		return formatErrors(results.Errors())
	}
	return nil
}

func hintFor(err error) string {
	switch {
	case trash.IsConflict(err):
		return "move the existing file away and try again"
	case trash.IsNoRestorePath(err):
		return "see `brm --list` for restorable names"
	case trash.IsProtectedPath(err):
		return "the path is protected by the trash itself or the config"
	default:
		return ""
	}
}

// pickFiles lets the user choose entries of the working directory
func (c *CLI) pickFiles() ([]string, error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read working directory: %w", err)
	}

	choices := lo.Map(entries, func(e os.DirEntry, _ int) ui.Choice {
		desc := "file"
		if e.IsDir() {
			desc = "directory"
		}
		return ui.Choice{Value: e.Name(), Description: desc}
	})

	picked, err := ui.Pick("Choose files to trash", choices)
	if errors.Is(err, ui.ErrNothingToPick) {
		return nil, errors.New("no files in the working directory")
	}
	return picked, err
}
