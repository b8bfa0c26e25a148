package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kk-code-lab/rmark/internal/markup"
	renderui "github.com/kk-code-lab/rmark/internal/ui/render"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse a document and report its attributes without starting the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flags.loadDocument(args[0])
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), args[0], doc)
		},
	}
}

func newDumpCmd(flags *rootFlags) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the document as plain text without terminal control sequences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flags.loadDocument(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if width == 0 {
				if fd, ok := terminalFd(out); ok {
					if w, _, err := term.GetSize(fd); err == nil {
						width = w
					}
				}
			}
			return writePlain(out, doc, width, flags.cfg.TabWidth)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "column width used for alignment (default: terminal width, or none)")
	return cmd
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := flags.cfg.YAML()
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func writePlain(w io.Writer, doc *markup.Document, width, tabWidth int) error {
	return renderui.NewPlainWriter(w, tabWidth).WriteDocument(doc, width)
}

func writeSummary(w io.Writer, path string, doc *markup.Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ok\n", path)
	fmt.Fprintf(&b, "  lines: %d\n", doc.LineCount())
	if title, ok := doc.Title(); ok {
		fmt.Fprintf(&b, "  title: %s\n", title)
	}
	if size, ok := doc.TextSize(); ok {
		fmt.Fprintf(&b, "  text_size: %d\n", size)
	}
	fmt.Fprintf(&b, "  alignment: %s\n", doc.Alignment())
	_, err := io.WriteString(w, b.String())
	return err
}
