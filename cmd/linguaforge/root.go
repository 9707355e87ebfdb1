package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "linguaforge",
		Short:         "Multilingual text toolkit",
		Long:          "Detect languages, classify scripts, tokenize, transliterate and normalize UTF-8 text.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetFlagErrorFunc(flagError)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "TOML defaults file (env LINGUA_CONFIG)")
	flags.StringVarP(&ctx.formatFlag, "format", "f", "", "Output format: text, json, table or auto")
	flags.StringVar(&ctx.logLevelFlag, "log-level", "", "Log level written to stderr (debug, info, warn, error)")
	flags.BoolVar(&ctx.sanitizeFlag, "sanitize", false, "Drop invalid UTF-8 and control characters from input")

	rootCmd.AddCommand(newDetectCommand(ctx))
	rootCmd.AddCommand(newTokenizeCommand(ctx))
	rootCmd.AddCommand(newTransliterateCommand(ctx))
	rootCmd.AddCommand(newNormalizeCommand(ctx))
	rootCmd.AddCommand(newScriptCommand(ctx))
	rootCmd.AddCommand(newLanguagesCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))

	return rootCmd
}
