package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdin is attached to a terminal. Prompts are
// only usable when it returns true.
func IsInteractive() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
