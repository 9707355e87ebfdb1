package main

import (
	"fmt"
	"os"

	perr "linguaforge/internal/platform/errors"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(perr.ExitCode(err))
	}
}
