package app

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/rmark/internal/fs"
	"github.com/kk-code-lab/rmark/internal/markup"
	"github.com/kk-code-lab/rmark/internal/pager"
	inputui "github.com/kk-code-lab/rmark/internal/ui/input"
	renderui "github.com/kk-code-lab/rmark/internal/ui/render"
	"github.com/kk-code-lab/rmark/internal/watch"
)

// Options configure an interactive session.
type Options struct {
	// Path is the document file. It is only read again on reload.
	Path     string
	Read     fsutil.ReadOptions
	Parse    markup.Options
	TabWidth int
	Keys     inputui.Keymap
	// Watch reloads the document whenever Path changes on disk.
	Watch bool
}

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	state     *pager.State
	renderer  *renderui.Renderer
	input     *inputui.InputHandler
	commandCh chan pager.Command

	doc     *markup.Document
	notice  string
	keyHint string

	watcher  *watch.Watcher
	reloadCh <-chan struct{}

	opts       Options
	shouldQuit bool
}

// New opens the terminal and prepares a session for the parsed doc.
func New(doc *markup.Document, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApplication(screen, doc, opts), nil
}

func newApplication(screen tcell.Screen, doc *markup.Document, opts Options) *Application {
	commandCh := make(chan pager.Command, 16)
	app := &Application{
		screen:    screen,
		state:     pager.New(doc.LineCount()),
		renderer:  renderui.NewRenderer(screen, opts.TabWidth),
		input:     inputui.NewInputHandler(commandCh, opts.Keys),
		commandCh: commandCh,
		doc:       doc,
		keyHint:   fmt.Sprintf("%c/%c scroll  %c quit", opts.Keys.Down, opts.Keys.Up, opts.Keys.Quit),
		opts:      opts,
	}

	if opts.Watch && opts.Path != "" {
		w, err := watch.New(opts.Path, watch.DefaultDebounce)
		if err != nil {
			// Viewing still works without live reload.
			slog.Warn("live reload disabled", "path", opts.Path, "error", err)
		} else {
			app.watcher = w
			app.reloadCh = w.Changes()
		}
	}
	return app
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}

// Offset is the current scroll offset.
func (app *Application) Offset() int {
	return app.state.Offset()
}
