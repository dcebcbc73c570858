// Package config handles application configuration and setup
package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// CreateLogger creates a logger with appropriate settings. Quiet discards
// everything; debug adds timestamps and source positions for tracing.
func CreateLogger(debug, quiet bool) *log.Logger {
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	prefix := filepath.Base(os.Args[0]) + ": "
	if debug {
		return log.New(os.Stderr, prefix, log.Lmicroseconds|log.Lshortfile)
	}
	return log.New(os.Stderr, prefix, 0)
}
