package core

import (
	"fmt"
	"io"
	"log"
)

// Logger receives component-tagged diagnostics.
type Logger interface {
	Infof(component string, format string, args ...any)
	Errorf(component string, format string, args ...any)
}

// NoopLogger drops everything.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...any)  {}
func (NoopLogger) Errorf(component, format string, args ...any) {}

// StdLogger writes "[LEVEL] component: message" lines through a log.Logger.
type StdLogger struct{ l *log.Logger }

// NewStdLogger returns a StdLogger writing timestamped lines to w.
func NewStdLogger(w io.Writer) StdLogger {
	return StdLogger{l: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

func (s StdLogger) Infof(component string, format string, args ...any) {
	s.write("INFO", component, format, args...)
}

func (s StdLogger) Errorf(component string, format string, args ...any) {
	s.write("ERROR", component, format, args...)
}

func (s StdLogger) write(level, component, format string, args ...any) {
	s.l.Printf("[%s] %s: %s", level, component, fmt.Sprintf(format, args...))
}
