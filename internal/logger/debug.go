//go:build debug

package logger

import (
	"log"

	"go.uber.org/zap"
)

// New returns a new logger with default options.
func New() *Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return Wrap(l)
}

// NewFile returns a new logger and also writes the log output to files.
func NewFile(files ...string) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = append(cfg.OutputPaths, files...)
	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return Wrap(l)
}
