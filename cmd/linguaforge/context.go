package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"linguaforge/internal/core/normalize"
	"linguaforge/internal/platform/config"
	perr "linguaforge/internal/platform/errors"
	"linguaforge/internal/platform/logger"
	textsvc "linguaforge/internal/services/text/service"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
	formatAuto  = "auto"
)

// commandContext carries the global flags and what setup resolves from them
type commandContext struct {
	configFlag   string
	formatFlag   string
	logLevelFlag string
	sanitizeFlag bool

	cfg      config.Conf
	format   string
	sanitize bool
	svc      *textsvc.Svc
}

func newCommandContext() *commandContext {
	return &commandContext{cfg: config.New().Prefix("LINGUA_")}
}

// setup layers the TOML file under LINGUA_* env, then flags over both
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg := config.New().Prefix("LINGUA_")

	path := strings.TrimSpace(c.configFlag)
	if path == "" {
		path = cfg.MayString("CONFIG", "")
	}
	if path != "" {
		loaded, err := cfg.LoadTOMLFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	c.cfg = cfg

	format := strings.ToLower(strings.TrimSpace(c.formatFlag))
	if format == "" {
		format = strings.ToLower(cfg.MayString("FORMAT", formatAuto))
	}
	switch format {
	case formatText, formatJSON, formatTable:
	case formatAuto:
		format = formatText
		if shouldColorize(cmd.OutOrStdout()) {
			format = formatTable
		}
	default:
		return usageErr("unknown format %q, want text, json, table or auto", format)
	}
	c.format = format

	c.sanitize = c.sanitizeFlag
	if !cmd.Flags().Changed("sanitize") {
		c.sanitize = cfg.MayBool("SANITIZE", false)
	}

	level := c.logLevelFlag
	if level == "" {
		level = cfg.MayString("LOG_LEVEL", "warn")
	}
	logger.Init(logger.Options{
		Level:   level,
		Format:  "console",
		Service: "linguaforge",
		Writer:  cmd.ErrOrStderr(),
	})
	logger.SetLevel(level)

	c.svc = textsvc.New(logger.Named("cli"))
	return nil
}

// service returns the text service, building one when setup did not run
func (c *commandContext) service() *textsvc.Svc {
	if c.svc == nil {
		c.svc = textsvc.New(logger.Named("cli"))
	}
	return c.svc
}

// input reads the --input source, "-" meaning the command's stdin
func (c *commandContext) input(cmd *cobra.Command, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", usageErr("--input is required")
	}
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeUnknown, "read stdin")
		}
	} else {
		raw, err = readFile(path)
		if err != nil {
			return "", err
		}
	}

	text := trimLineEnd(string(raw))
	if c.sanitize {
		text = normalize.Sanitize(text)
	}
	return text, nil
}
