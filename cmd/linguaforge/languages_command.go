package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"linguaforge/internal/services/text/domain"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	var (
		scriptName string
		family     string
		scripts    bool
		families   bool
	)
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the language registry",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scripts && families {
				return usageErr("--scripts and --families are exclusive")
			}
			if scripts {
				return listScripts(cmd, ctx)
			}
			if families {
				return listFamilies(cmd, ctx)
			}
			langs, err := ctx.service().Languages(cmd.Context(), domain.LanguagesInput{
				Script: strings.TrimSpace(scriptName),
				Family: strings.TrimSpace(family),
			})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(langs))
			for _, l := range langs {
				rows = append(rows, []string{l.Code, l.Name, l.Script, l.Family})
			}
			return ctx.render(cmd, view{
				data: langs,
				text: func(w io.Writer) {
					for _, l := range langs {
						fmt.Fprintf(w, "%-4s %-20s %-12s %s\n", l.Code, l.Name, l.Script, l.Family)
					}
				},
				headers: []string{"Code", "Language", "Script", "Family"},
				rows:    rows,
			})
		},
	}
	cmd.Flags().StringVar(&scriptName, "script", "", "Only languages written in this script")
	cmd.Flags().StringVar(&family, "family", "", "Only languages of this family")
	cmd.Flags().BoolVar(&scripts, "scripts", false, "List scripts with their language counts instead")
	cmd.Flags().BoolVar(&families, "families", false, "List language families instead")
	return cmd
}

func listScripts(cmd *cobra.Command, ctx *commandContext) error {
	counts, err := ctx.service().Scripts(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Script, strconv.Itoa(c.Count)})
	}
	return ctx.render(cmd, view{
		data: counts,
		text: func(w io.Writer) {
			for _, c := range counts {
				fmt.Fprintf(w, "%-12s %d\n", c.Script, c.Count)
			}
		},
		headers: []string{"Script", "Languages"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignRight},
	})
}

func listFamilies(cmd *cobra.Command, ctx *commandContext) error {
	fams, err := ctx.service().Families(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(fams))
	for _, f := range fams {
		rows = append(rows, []string{f})
	}
	return ctx.render(cmd, view{
		data: fams,
		text: func(w io.Writer) {
			for _, f := range fams {
				fmt.Fprintln(w, f)
			}
		},
		headers: []string{"Family"},
		rows:    rows,
	})
}
