package main

import (
	"github.com/spf13/cobra"

	perr "linguaforge/internal/platform/errors"
)

// usageErr marks a mistake in how the command was invoked, exit status 2
func usageErr(format string, a ...any) error {
	return perr.Newf(perr.ErrorCodeValidation, format, a...)
}

func flagError(_ *cobra.Command, err error) error {
	return perr.Wrap(err, perr.ErrorCodeValidation, "usage")
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return usageErr("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return usageErr("%s takes no arguments, got %q", cmd.CommandPath(), args[0])
}
