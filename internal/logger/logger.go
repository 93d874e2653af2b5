// Package logger configures the process-wide slog.Logger, grounded on
// ehrlich-b-wingthing's internal/logger: a package-level *slog.Logger
// behind a text handler, writing to stderr so stdout stays reserved
// for report output, with the level switched by the CLI's -v flag.
package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide logger. It is ready to use at the info level
// before Init is called.
var Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init reconfigures Log for the given verbosity.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { Log.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { Log.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { Log.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { Log.Error(msg, args...) }
