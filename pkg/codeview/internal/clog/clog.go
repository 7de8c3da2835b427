// ABOUTME: Warn is the core's own diagnostic logger, used immediately before
// ABOUTME: a boundary rejection or an internal-invariant panic

package clog

import (
	"fmt"
	"os"
)

// Warn writes a diagnostic line to stderr ahead of a boundary rejection
// (document.go's validatePos) or an internal-invariant panic
// (update_after_modify_text.go), so a host embedding the core gets a line
// of context on stderr alongside the returned error or the panic.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", args...)
}
