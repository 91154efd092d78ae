package trash

import "github.com/samber/lo"

// Action tells what happened to a single target
type Action int

const (
	ActionSkipped  Action = iota // the user declined
	ActionTrashed                // moved into the trash and recorded
	ActionDeleted                // removed permanently, no record
	ActionRestored               // moved back to its original path
	ActionPurged                 // removed from the trash
)

func (a Action) String() string {
	switch a {
	case ActionTrashed:
		return "trashed"
	case ActionDeleted:
		return "deleted"
	case ActionRestored:
		return "restored"
	case ActionPurged:
		return "purged"
	default:
		return "skipped"
	}
}

// Outcome describes a successful (or declined) operation
type Outcome struct {
	Action Action

	// Path is the original absolute path of the entry
	Path string

	// Name is the trashed name, empty when nothing was recorded
	Name string
}

// Result pairs a batch target with what happened to it
type Result struct {
	Target  string
	Outcome Outcome
	Err     error
}

// Results is the outcome of a batch operation, in input order
type Results []Result

// Failed returns the results that carry an error
func (r Results) Failed() Results {
	return lo.Filter(r, func(res Result, _ int) bool {
		return res.Err != nil
	})
}

// AllFailed reports whether the batch was non-empty and nothing succeeded
func (r Results) AllFailed() bool {
	return len(r) > 0 && len(r.Failed()) == len(r)
}

// Errors returns the errors of the failed results
func (r Results) Errors() []error {
	return lo.FilterMap(r, func(res Result, _ int) (error, bool) {
		return res.Err, res.Err != nil
	})
}
