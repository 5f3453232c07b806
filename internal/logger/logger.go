// Package logger provides the module-tagged zap logger shared by the
// analysis packages.
package logger

import "go.uber.org/zap"

// Logger encapsulates a Logger and module which it belongs to.
// Use this through SetLogger() of the analysers.
type Logger struct {
	*zap.SugaredLogger
	module string
}

type LogSetter interface {
	SetLogger(*Logger)
}

// Module returns (stylised) module name.
func (l *Logger) Module() string {
	return l.module
}

// For returns a Logger writing to the same output as l, tagged with module.
func (l *Logger) For(module string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger, module: module}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Wrap returns a Logger writing to l.
func Wrap(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}
