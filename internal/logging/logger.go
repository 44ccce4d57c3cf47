// Package logging provides a shared logger and log utilities to be used in
// all internal packages.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// L is the global logger. It is initialized for console output and may be
// replaced once at startup by SetLevel or UseFileLogger.
var L = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	out := w
	if isTerminal() {
		out = zerolog.ConsoleWriter{
			Out:         w,
			TimeFormat:  time.RFC3339,
			FormatLevel: consoleFormatLevel,
		}
	}

	return zerolog.New(out).With().Timestamp().Caller().Logger()
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// SetLevel sets the level of the global logger. An unrecognized name is an
// error, the level is left unchanged.
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	L = L.Level(level)
	return nil
}

func Debugf(format string, args ...interface{}) {
	L.Debug().CallerSkipFrame(1).Msgf(format, args...)
}

func Infof(format string, args ...interface{}) {
	L.Info().CallerSkipFrame(1).Msgf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	L.Warn().CallerSkipFrame(1).Msgf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	L.Error().CallerSkipFrame(1).Msgf(format, args...)
}

// PatchLogger sets the global logger to write to w, and returns a function
// to revert the change. Used by tests.
func PatchLogger(w io.Writer) func() {
	original := L
	L = zerolog.New(w).With().Timestamp().Logger()
	return func() {
		L = original
	}
}
