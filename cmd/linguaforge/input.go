package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	perr "linguaforge/internal/platform/errors"
)

// readFile maps missing files to not found so they exit like any failed operation
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "input file %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "input file %s", path)
	}
	if info.IsDir() {
		return nil, perr.InvalidArgf("input %s is a directory", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "read %s", path)
	}
	return raw, nil
}

// trimLineEnd drops the one line terminator editors append to a file
func trimLineEnd(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return s
}
