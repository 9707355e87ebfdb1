package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"linguaforge/internal/core/detect"
	"linguaforge/internal/services/text/domain"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var (
		input string
		topK  int
	)
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the language of a text",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("top-k") {
				topK = ctx.cfg.MayInt("TOP_K", 1)
			}
			if topK < 1 || topK > domain.MaxTopK {
				return usageErr("--top-k must be between 1 and %d, got %d", domain.MaxTopK, topK)
			}
			text, err := ctx.input(cmd, input)
			if err != nil {
				return err
			}
			results, err := ctx.service().Detect(cmd.Context(), domain.DetectInput{Text: text, TopK: topK})
			if err != nil {
				return err
			}
			return ctx.render(cmd, detectView(results))
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input text file, - for stdin")
	cmd.Flags().IntVar(&topK, "top-k", 1, "Number of candidates")
	return cmd
}

func detectView(results []detect.Result) view {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Language.Code, r.Language.Name, percent(r.Confidence), r.Language.Script})
	}
	return view{
		data: results,
		text: func(w io.Writer) {
			for _, r := range results {
				fmt.Fprintf(w, "%s  %-20s  confidence=%s  script=%s\n",
					r.Language.Code, r.Language.Name, percent(r.Confidence), r.Language.Script)
			}
		},
		headers: []string{"Code", "Language", "Confidence", "Script"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	}
}

func percent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 2, 64) + "%"
}

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var input, lang string
	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Split a text into tokens",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("language") {
				lang = ctx.cfg.MayString("LANGUAGE", "")
			}
			text, err := ctx.input(cmd, input)
			if err != nil {
				return err
			}
			res, err := ctx.service().Tokenize(cmd.Context(), domain.TokenizeInput{Text: text, Language: strings.TrimSpace(lang)})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(res.Tokens))
			for i, tok := range res.Tokens {
				rows = append(rows, []string{strconv.Itoa(i + 1), tok})
			}
			return ctx.render(cmd, view{
				data: res,
				text: func(w io.Writer) {
					fmt.Fprintf(w, "Language: %s (%s)\n", res.Language.Name, res.Language.Code)
					fmt.Fprintf(w, "Tokens (%d):\n", len(res.Tokens))
					fmt.Fprintln(w, strings.Join(res.Tokens, " | "))
				},
				headers: []string{"#", "Token"},
				rows:    rows,
				aligns:  []columnAlignment{alignRight, alignLeft},
			})
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input text file, - for stdin")
	cmd.Flags().StringVar(&lang, "language", "", "Language code, detected when omitted")
	return cmd
}

func newTransliterateCommand(ctx *commandContext) *cobra.Command {
	var input, from, to string
	cmd := &cobra.Command{
		Use:   "transliterate",
		Short: "Convert a text between Devanagari and Latin",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
				return usageErr("--from and --to are required")
			}
			text, err := ctx.input(cmd, input)
			if err != nil {
				return err
			}
			res, err := ctx.service().Transliterate(cmd.Context(), domain.TransliterateInput{Text: text, From: from, To: to})
			if err != nil {
				return err
			}
			return ctx.render(cmd, view{
				data:    res,
				text:    func(w io.Writer) { fmt.Fprintln(w, res.Target) },
				headers: []string{"From", "To", "Target"},
				rows:    [][]string{{res.SourceScript, res.TargetScript, res.Target}},
			})
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input text file, - for stdin")
	cmd.Flags().StringVar(&from, "from", "", "Source script, e.g. devanagari")
	cmd.Flags().StringVar(&to, "to", "", "Target script, e.g. latin")
	return cmd
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var input, lang string
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize a text with NFC and script specific rules",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("language") {
				lang = ctx.cfg.MayString("LANGUAGE", "")
			}
			if strings.TrimSpace(lang) == "" {
				return usageErr("--language is required")
			}
			text, err := ctx.input(cmd, input)
			if err != nil {
				return err
			}
			res, err := ctx.service().Normalize(cmd.Context(), domain.NormalizeInput{Text: text, Language: strings.TrimSpace(lang)})
			if err != nil {
				return err
			}
			return ctx.render(cmd, view{
				data:    res,
				text:    func(w io.Writer) { fmt.Fprintln(w, res.Normalized) },
				headers: []string{"Language", "Normalized"},
				rows:    [][]string{{res.Language, res.Normalized}},
			})
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input text file, - for stdin")
	cmd.Flags().StringVar(&lang, "language", "", "Language code")
	return cmd
}

func newScriptCommand(ctx *commandContext) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Print the dominant script of a text",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := ctx.input(cmd, input)
			if err != nil {
				return err
			}
			res, err := ctx.service().Script(cmd.Context(), domain.ScriptInput{Text: text})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(res.Counts))
			for _, c := range res.Counts {
				rows = append(rows, []string{c.Script, strconv.Itoa(c.Count)})
			}
			return ctx.render(cmd, view{
				data:    res,
				text:    func(w io.Writer) { fmt.Fprintln(w, res.Script) },
				headers: []string{"Script", "Runes"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignRight},
			})
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Input text file, - for stdin")
	return cmd
}
