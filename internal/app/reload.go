package app

import (
	"fmt"
	"log/slog"

	fsutil "github.com/kk-code-lab/rmark/internal/fs"
	"github.com/kk-code-lab/rmark/internal/markup"
)

// reload re-reads and re-parses the document after a change on disk. A failed
// reload keeps the previous document and reports the error in the status row.
func (app *Application) reload() bool {
	src, err := fsutil.ReadDocument(app.opts.Path, app.opts.Read)
	var doc *markup.Document
	if err == nil {
		doc, err = markup.Parse(src, app.opts.Parse)
	}
	if err != nil {
		slog.Warn("reload failed, keeping previous document", "path", app.opts.Path, "error", err)
		app.notice = fmt.Sprintf("reload failed: %v", err)
		return true
	}

	app.doc = doc
	app.notice = ""
	app.state.SetTotal(doc.LineCount())
	slog.Info("document reloaded", "path", app.opts.Path, "lines", doc.LineCount())
	return true
}
