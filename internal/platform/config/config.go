// Package config reads service and CLI settings from environment variables,
// optionally layered over values loaded from a TOML file
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"linguaforge/internal/platform/logger"
)

// Conf is a namespaced view over settings (e.g. "CORE_API_", "LINGUA_").
// The environment always wins; file values fill keys the environment leaves empty
type Conf struct {
	prefix string
	file   map[string]string
}

// New creates a root Conf (no prefix, environment only)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("CORE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, file: c.file} }

// key composes the fully-qualified setting name
func (c Conf) key(k string) string { return c.prefix + k }

// Source reports where key is set: "env", "file", or "" when unset
func (c Conf) Source(key string) string {
	k := c.key(key)
	if strings.TrimSpace(os.Getenv(k)) != "" {
		return "env"
	}
	if c.file[k] != "" {
		return "file"
	}
	return ""
}

func (c Conf) value(key string) string {
	k := c.key(key)
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return c.file[k]
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.value(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required setting")
	}
	return v
}

// MustInt panics if the given key is missing, empty, or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.value(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayInt64 returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt64(key string, def int64) int64 {
	s := c.value(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int64("default", def).Msg("invalid int64; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.value(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.value(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma-separated value, dropping blanks; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.value(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the allowed spelling of the value, def if empty; panics if not allowed
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayPort returns a listen address like ":4000". The value may be a bare port
// or a host:port pair; port 0 asks the kernel for a free one. Invalid ports log
// and fall back to def
func (c Conf) MayPort(key, def string) string {
	s := c.value(key)
	if s == "" {
		return def
	}
	host, port := "", s
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		host, port = s[:i], s[i+1:]
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 0 || p > 65535 {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Str("default", def).
			Msg("invalid TCP port; expected 0..65535")
		return def
	}
	return host + ":" + port
}
