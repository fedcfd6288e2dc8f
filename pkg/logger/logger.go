// Package logger is the process-wide structured logger. Helpers take a message
// followed by alternating key/value pairs:
//
//	logger.Info("Search finished", "probes", n, "status", status)
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger. Production writes JSON lines; any other
// environment, or an interactive stderr, gets the human-readable console
// format. Logs always go to stderr so command output on stdout stays clean.
func Init(environment string, debug bool) {
	var out io.Writer = os.Stderr
	if environment != "production" || term.IsTerminal(int(os.Stderr.Fd())) {
		out = ConsoleWriter(os.Stderr)
	}
	SetOutput(out, debug)
}

// SetOutput replaces the logger's destination.
func SetOutput(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ConsoleWriter returns a human-readable zerolog writer on w.
func ConsoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}

// Get returns the underlying zerolog logger.
func Get() *zerolog.Logger {
	return &log
}

func Debug(msg string, keyValues ...interface{}) {
	log.Debug().Fields(keyValues).Msg(msg)
}

func Info(msg string, keyValues ...interface{}) {
	log.Info().Fields(keyValues).Msg(msg)
}

func Warn(msg string, keyValues ...interface{}) {
	log.Warn().Fields(keyValues).Msg(msg)
}

// Error logs msg with err attached. A nil err is omitted.
func Error(msg string, err error, keyValues ...interface{}) {
	log.Error().Err(err).Fields(keyValues).Msg(msg)
}

// Fatal logs msg and exits the process with status 1.
func Fatal(msg string, err error, keyValues ...interface{}) {
	log.Fatal().Err(err).Fields(keyValues).Msg(msg)
}
