package trash

import "github.com/samber/lo"

// TrashAll trashes every path in order. Each path succeeds or fails on
// its own.
func (e *Engine) TrashAll(paths []string, force bool) Results {
	return lo.Map(paths, func(path string, _ int) Result {
		outcome, err := e.Trash(path, force)
		return Result{Target: path, Outcome: outcome, Err: err}
	})
}

// RestoreAll restores every name in order. Each name succeeds or fails on
// its own.
func (e *Engine) RestoreAll(names []string) Results {
	return lo.Map(names, func(name string, _ int) Result {
		outcome, err := e.Restore(name)
		return Result{Target: name, Outcome: outcome, Err: err}
	})
}
