package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	apppkg "github.com/kk-code-lab/rmark/internal/app"
	"github.com/kk-code-lab/rmark/internal/config"
	fsutil "github.com/kk-code-lab/rmark/internal/fs"
	"github.com/kk-code-lab/rmark/internal/markup"
	inputui "github.com/kk-code-lab/rmark/internal/ui/input"
)

const defaultLogFileName = "rmark.debug.log"

type rootFlags struct {
	configPath string
	debug      bool

	v       *viper.Viper
	cfg     config.Config
	logFile io.Closer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{v: config.New()}

	cmd := &cobra.Command{
		Use:   "rmark [flags] FILE",
		Short: "rmark - terminal pager for styled text documents",
		Long: fmt.Sprintf(`rmark shows a document written in "!style text$" markup in the terminal.
An optional prelude between two lines of dashes sets the title, text size
and alignment. Scroll with j/k and quit with q.

Styles: %s.

When standard output is not a terminal the document is printed as plain text.`, strings.Join(markup.StyleNames(), ", ")),
		Example: `  rmark notes.rmark
  rmark --watch notes.rmark
  rmark check notes.rmark`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.v, flags.configPath)
			if err != nil {
				return err
			}
			flags.cfg = cfg
			if err := flags.setupLogging(); err != nil {
				// Fall back to stderr so log records are not lost.
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
				slog.Warn("cannot open log file", "error", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logFile != nil {
				if err := flags.logFile.Close(); err != nil {
					slog.Error("Failed to close log file", "error", err)
				}
			}
			return nil
		},
		RunE:          flags.runView,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default: "+config.DefaultPath()+")")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	pf.String("log-file", "", "path to debug log file (default: $TMPDIR/"+defaultLogFileName+"; only used with --debug)")
	pf.String("blank-lines", "", "blank line policy outside styled scopes: preserve or drop")
	pf.Int("tab-width", 0, "columns per tab stop")
	cmd.Flags().BoolP("watch", "w", false, "reload the document when the file changes")

	_ = flags.v.BindPFlag("log_file", pf.Lookup("log-file"))
	_ = flags.v.BindPFlag("blank_lines", pf.Lookup("blank-lines"))
	_ = flags.v.BindPFlag("tab_width", pf.Lookup("tab-width"))
	_ = flags.v.BindPFlag("watch", cmd.Flags().Lookup("watch"))

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newDumpCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	return cmd
}

// setupLogging discards records unless --debug is set, in which case they go
// to the log file so the screen is never written to.
func (f *rootFlags) setupLogging() error {
	if !f.debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	path := cmp.Or(strings.TrimSpace(f.cfg.LogFile), filepath.Join(os.TempDir(), defaultLogFileName))
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	f.logFile = logFile

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("logging started", "config", f.v.ConfigFileUsed())
	return nil
}

// loadDocument reads and parses path once. The result is reused for every
// frame of the session.
func (f *rootFlags) loadDocument(path string) (*markup.Document, error) {
	src, err := fsutil.ReadDocument(path, f.readOptions())
	if err != nil {
		return nil, err
	}
	doc, err := markup.Parse(src, f.parseOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("document parsed", "path", path, "lines", doc.LineCount(), "attributes", len(doc.Attributes))
	return doc, nil
}

func (f *rootFlags) readOptions() fsutil.ReadOptions {
	return fsutil.ReadOptions{Normalize: f.cfg.Normalize}
}

func (f *rootFlags) parseOptions() markup.Options {
	return markup.Options{BlankLines: f.cfg.BlankLinePolicy()}
}

func (f *rootFlags) runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc, err := f.loadDocument(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, ok := terminalFd(out); !ok {
		slog.Debug("stdout is not a terminal, printing plain text")
		return writePlain(out, doc, 0, f.cfg.TabWidth)
	}

	down, up, quit := f.cfg.KeyRunes()
	application, err := apppkg.New(doc, apppkg.Options{
		Path:     path,
		Read:     f.readOptions(),
		Parse:    f.parseOptions(),
		TabWidth: f.cfg.TabWidth,
		Keys:     inputui.Keymap{Down: down, Up: up, Quit: quit},
		Watch:    f.cfg.Watch,
	})
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		_ = application.Close()
	}()

	return application.Run(cmd.Context())
}

// terminalFd returns the file descriptor behind w when it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	return fd, term.IsTerminal(fd)
}
