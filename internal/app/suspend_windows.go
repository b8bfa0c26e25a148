//go:build windows

package app

import "os"

// Windows has no SIGTSTP/SIGCONT; suspend is a no-op.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool {
	return false
}

func contSignals() []os.Signal {
	return nil
}
