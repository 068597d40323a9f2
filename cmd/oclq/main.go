package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwbudde/ocltools/internal/cl"
	"github.com/cwbudde/ocltools/internal/cli"
)

func main() {
	if err := newRootCmd(deps{open: cl.Open}).Execute(); err != nil {
		slog.Debug("Command failed", "kind", cl.KindOf(err).String(), "error", err)
		fmt.Fprintln(os.Stderr, cli.Diagnostic(err))
		os.Exit(1)
	}
}
