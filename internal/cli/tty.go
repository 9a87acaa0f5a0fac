package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminalFn is overridable in tests.
var isTerminalFn = func(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// canRunTUI reports whether the full-screen UI has somewhere to draw.
// Stdin may be piped (e.g. `jwtinspect -`): bubbletea then reads keys from
// the controlling terminal instead.
func canRunTUI() bool {
	return isTerminalFn(os.Stdout)
}
