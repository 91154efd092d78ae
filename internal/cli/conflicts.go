package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// exclusive lists the options that select an operation of their own
func (o Option) exclusive() []string {
	var set []string
	if o.TrashPath {
		set = append(set, "--trash-path")
	}
	if o.Empty {
		set = append(set, "--delete-trash-contents")
	}
	if o.Restore {
		set = append(set, "--restore")
	}
	if o.List {
		set = append(set, "--list")
	}
	if o.SetTrashPath != "" {
		set = append(set, "--set-trash-path")
	}
	if o.Completions != "" {
		set = append(set, "--generate-completions")
	}
	return set
}

// checkConflicts rejects option combinations that select more than one
// operation
func checkConflicts(opt Option, args []string) error {
	ops := opt.exclusive()

	if len(ops) > 1 {
		return fmt.Errorf("options cannot be used together: %s", strings.Join(ops, ", "))
	}

	if len(ops) == 1 {
		op := ops[0]
		others := lo.Compact([]string{
			lo.Ternary(opt.Force, "--force", ""),
			lo.Ternary(opt.Fzf, "--fzf", ""),
		})
		if len(others) > 0 {
			return fmt.Errorf("%s cannot be used with %s", op, strings.Join(others, ", "))
		}
		// restore takes trashed names as arguments
		if op != "--restore" && len(args) > 0 {
			return fmt.Errorf("%s does not take paths", op)
		}
	}

	if opt.Fzf && len(args) > 0 {
		return fmt.Errorf("--fzf cannot be used with paths")
	}

	return nil
}
