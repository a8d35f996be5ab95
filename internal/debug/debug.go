// Package debug writes diagnostics for mealdb when MEALDB_DEBUG is set or
// --verbose is passed. The interactive browser points the output at a log
// file so the alternate screen is not disturbed.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// EnvVar turns diagnostics on when non-empty.
const EnvVar = "MEALDB_DEBUG"

var (
	verboseMode = false
	logMutex    sync.Mutex
	out         io.Writer = os.Stderr
)

// Enabled reads EnvVar on every call so a value loaded from .env after
// startup still counts.
func Enabled() bool {
	return verboseMode || os.Getenv(EnvVar) != ""
}

// SetVerbose enables verbose/debug output
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetOutput redirects diagnostics. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// Logf prints a diagnostic line when debugging is enabled.
// A trailing newline is added if the format lacks one.
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	_, _ = io.WriteString(out, msg)
}
