package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a stderr logger at the requested level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "clustergen",
		ReportTimestamp: true,
	}), nil
}
