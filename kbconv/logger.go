package kbconv

import "log"

// Logger is the byte-oriented diagnostic sink used only for debug output;
// it never gates control flow.
type Logger interface {
	Debugf(format string, args ...any)
}

// StdLogger wraps the standard library's *log.Logger. No repo in the
// retrieval pack imports a structured logging library for this kind of
// ambient debug output — they all reach for log.Printf (see iobus.go) — so
// this stays on stdlib.
type StdLogger struct {
	l *log.Logger
}

func NewStdLogger(l *log.Logger) StdLogger {
	return StdLogger{l: l}
}

func (s StdLogger) Debugf(format string, args ...any) {
	if s.l == nil {
		return
	}
	s.l.Printf(format, args...)
}
