package trash

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to a Confirmer
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

var (
	// AlwaysConfirm accepts every prompt
	AlwaysConfirm = ConfirmFunc(func(string) bool { return true })

	// NeverConfirm declines every prompt
	NeverConfirm = ConfirmFunc(func(string) bool { return false })
)
