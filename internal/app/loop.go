package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rmark/internal/pager"
	renderui "github.com/kk-code-lab/rmark/internal/ui/render"
)

// Run draws the document and processes input until the user quits or ctx is
// cancelled. The parsed document is reused for every frame.
func (app *Application) Run(ctx context.Context) error {
	app.render()
	renderPending := false

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case <-ctx.Done():
			slog.Debug("session cancelled", "error", ctx.Err())
			return nil
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case cmd := <-app.commandCh:
			if app.handleCommand(cmd) {
				renderPending = true
			}
		case <-app.reloadCh:
			if app.reload() {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processCommands() {
			renderPending = true
		}
	}
	return nil
}

func (app *Application) render() renderui.Layout {
	return app.renderer.Render(renderui.Frame{
		Doc:     app.doc,
		State:   app.state.Snapshot(),
		Notice:  app.notice,
		KeyHint: app.keyHint,
	})
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return false
	case *tcell.EventResize:
		app.screen.Sync()
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processCommands() bool {
	changed := false
	for {
		select {
		case cmd := <-app.commandCh:
			if app.handleCommand(cmd) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// handleCommand applies cmd and reports whether a redraw is needed.
func (app *Application) handleCommand(cmd pager.Command) bool {
	if cmd == pager.CommandSuspend {
		app.suspendToShell()
		return app.resumeAfterStop()
	}
	changed := app.state.Apply(cmd)
	if app.state.ShouldQuit() {
		app.shouldQuit = true
		return false
	}
	if changed {
		slog.Debug("scrolled", "command", cmd.String(), "offset", app.state.Offset())
	}
	return changed
}
