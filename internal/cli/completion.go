package cli

import (
	"fmt"
	"io"

	"github.com/babarot/brm/internal/shell"
)

func printCompletion(w io.Writer, sh, prog string) error {
	script, err := shell.Completion(sh, prog)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}
