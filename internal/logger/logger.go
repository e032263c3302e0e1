// Package logger configures the application-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It discards everything until Init
// is called.
var Log = newDiscardLogger()

// Init configures Log from the environment:
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FORMAT: "json" or "text", default "text"
//   - LOG_FILE: file to append to; without it logs are discarded because
//     the terminal is owned by the UI
//
// The returned function closes the log file, if any.
func Init() (closeFn func() error, err error) {
	Log = logrus.New()

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		Log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return func() error { return nil }, fmt.Errorf("open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f.Close, nil
}

// Redirect sends Log's output to w and returns a function restoring the
// previous output. Used by tests.
func Redirect(w io.Writer) (restore func()) {
	prev := Log.Out
	Log.SetOutput(w)
	return func() { Log.SetOutput(prev) }
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
