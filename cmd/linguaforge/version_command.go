package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"linguaforge/internal/core/version"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info("linguaforge")
			return ctx.render(cmd, view{
				data:    info,
				text:    func(w io.Writer) { fmt.Fprintln(w, info.String()) },
				headers: []string{"Service", "Version", "Commit", "Built"},
				rows:    [][]string{{info.Service, info.Version, info.Commit, info.Date}},
			})
		},
	}
}
