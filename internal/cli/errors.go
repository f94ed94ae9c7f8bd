package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/scarff-dev/scarff/internal/project"
	"github.com/scarff-dev/scarff/internal/scaffold"
	"github.com/scarff-dev/scarff/internal/target"
)

// FormatError turns a core error into the message printed to the user,
// with a hint where one helps. The core layers never print; this is the
// single place their errors become text. Typed errors already carry
// their legal alternatives in the message, so hints only cover the
// what-now cases.
func FormatError(err error) string {
	msg := err.Error()
	if hint := errorHint(err); hint != "" {
		msg += "\n  " + hint
	}
	return msg
}

// PrintError writes the formatted error to w, styled when w is a
// terminal.
func PrintError(w io.Writer, err error) {
	msg := "Error: " + FormatError(err)
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		msg = cliError.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, target.ErrMissingField):
		return "Pass --language, set default_language in your config, or run interactively."
	case errors.Is(err, scaffold.ErrDestinationExists):
		return "Use --force to replace it, or pick another name."
	case errors.Is(err, project.ErrInvalidProjectName):
		return "Use a single directory name without separators or a leading dot or dash."
	}
	return ""
}
