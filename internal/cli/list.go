package cli

import (
	"fmt"
	"log/slog"

	"github.com/babarot/brm/internal/trash"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// List prints every trashed entry with its original path
func (c *CLI) List() error {
	slog.Debug("cli.list started")
	defer slog.Debug("cli.list finished")

	entries, err := c.engine.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.stdout, "The trash is empty.")
		return nil
	}

	table := tablewriter.NewWriter(c.stdout)
	table.SetHeader([]string{"Name", "Size", "Type", "Original Path"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, e := range entries {
		table.Append(listRow(e))
	}
	table.Render()

	fmt.Fprintf(c.stdout, "\n%d entries in %s\n", len(entries), c.engine.TrashDir())
	return nil
}

func listRow(e trash.Entry) []string {
	faint := color.New(color.Faint).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	kind := e.MIME
	if e.IsDir {
		kind = "directory"
	}

	size := humanize.Bytes(uint64(e.Size))
	origin := e.OriginalPath

	switch {
	case e.Orphaned:
		size, kind = "-", "-"
		origin = red(origin + " (missing from trash)")
	case e.Untracked:
		origin = faint("(no restore path)")
	}

	return []string{e.Name, size, kind, origin}
}
