package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	perr "linguaforge/internal/platform/errors"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML layers the document read from r under the environment. Keys are
// upper-cased, nested tables join with "_" and the Conf prefix is prepended,
// so `top_k = 3` under Prefix("LINGUA_") answers for LINGUA_TOP_K
func (c Conf) LoadTOML(r io.Reader) (Conf, error) {
	var doc map[string]any
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return c, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "config line %d column %d", row, col)
		}
		return c, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "config")
	}

	file := make(map[string]string, len(c.file)+len(doc))
	for k, v := range c.file {
		file[k] = v
	}
	flatten(c.prefix, doc, file)
	return Conf{prefix: c.prefix, file: file}, nil
}

// LoadTOMLFile is LoadTOML over a file path
func (c Conf) LoadTOMLFile(path string) (Conf, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, perr.Wrapf(err, perr.ErrorCodeNotFound, "config file %s", path)
		}
		return c, perr.Wrapf(err, perr.ErrorCodeUnknown, "config file %s", path)
	}
	defer func() { _ = f.Close() }()
	return c.LoadTOML(f)
}

// FileKeys returns the fully-qualified keys loaded from files, sorted
func (c Conf) FileKeys() []string {
	out := make([]string, 0, len(c.file))
	for k := range c.file {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func flatten(prefix string, doc map[string]any, into map[string]string) {
	for k, v := range doc {
		key := prefix + strings.ToUpper(strings.ReplaceAll(k, "-", "_"))
		switch x := v.(type) {
		case map[string]any:
			flatten(key+"_", x, into)
		case []any:
			parts := make([]string, 0, len(x))
			for _, e := range x {
				parts = append(parts, fmt.Sprint(e))
			}
			into[key] = strings.Join(parts, ",")
		default:
			into[key] = fmt.Sprint(x)
		}
	}
}
