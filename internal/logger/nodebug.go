//go:build !debug

package logger

import (
	"log"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// New returns a new logger with default options. Debug entries are kept,
// as with NewFile.
func New() *Logger {
	color.NoColor = true
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return Wrap(l)
}

// NewFile returns a new logger and also writes the log output to files.
// Debug entries are kept so the files carry the full analysis trace.
func NewFile(files ...string) *Logger {
	color.NoColor = true
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = append(cfg.OutputPaths, files...)
	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return Wrap(l)
}
