//go:build !windows

package app

import (
	"log/slog"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	if err := app.screen.Suspend(); err != nil {
		slog.Warn("suspend failed", "error", err)
		return
	}
	// Stop only this process so a wrapping shell keeps job control.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}
