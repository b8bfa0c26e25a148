package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rmark/internal/textutil"
)

func main() {
	// UTF-8 fallback keeps non-ASCII text readable on terminals with
	// unknown encodings.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	textutil.UseLocaleAmbiguousWidth()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
