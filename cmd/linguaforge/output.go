package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// view is one result rendered three ways; nil renderers fall back to text
type view struct {
	data    any
	text    func(w io.Writer)
	headers []string
	rows    [][]string
	aligns  []columnAlignment
}

func (c *commandContext) render(cmd *cobra.Command, v view) error {
	out := cmd.OutOrStdout()
	switch c.format {
	case formatJSON:
		return writeJSON(cmd, v.data)
	case formatTable:
		if len(v.headers) > 0 {
			fmt.Fprintln(out, renderTable(v.headers, v.rows, v.aligns, shouldColorize(out)))
			return nil
		}
	}
	v.text(out)
	return nil
}
