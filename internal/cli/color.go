package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// colorEnabled decides whether to emit ANSI escapes: the explicit
// --no-color flag always wins, otherwise the default follows whether
// stdout is actually a terminal — the same gate funvibe-funxy uses
// go-isatty for around its own colorized output.
func colorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
