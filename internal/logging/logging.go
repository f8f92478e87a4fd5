// Package logging defines the logging port shared by the generation,
// rendering, and export components. The components only ever talk to the
// Logger interface; the binary decides where messages go (console, file,
// both, or nowhere).
package logging

import (
	"io"
	"log"
)

// Level filters which messages a Logger emits.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the category-scoped logging port. All methods follow Printf
// formatting rules.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// New returns a Logger that writes "[LEVEL] [category] message" lines to out,
// suppressing anything below min.
func New(category string, min Level, out io.Writer) Logger {
	return &stdLogger{
		category: category,
		min:      min,
		l:        log.New(out, "", log.LstdFlags),
	}
}

// Nop returns a Logger that discards everything. Components default to it so
// they stay silent unless the caller injects a real backend.
func Nop() Logger { return nopLogger{} }

type stdLogger struct {
	category string
	min      Level
	l        *log.Logger
}

func (s *stdLogger) emit(lv Level, tag, format string, args ...any) {
	if lv < s.min {
		return
	}
	s.l.Printf("["+tag+"] ["+s.category+"] "+format, args...)
}

func (s *stdLogger) Debugf(format string, args ...any) {
	s.emit(LevelDebug, "DEBUG", format, args...)
}

func (s *stdLogger) Infof(format string, args ...any) {
	s.emit(LevelInfo, "INFO", format, args...)
}

func (s *stdLogger) Warnf(format string, args ...any) {
	s.emit(LevelWarn, "WARN", format, args...)
}

func (s *stdLogger) Errorf(format string, args ...any) {
	s.emit(LevelError, "ERROR", format, args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
