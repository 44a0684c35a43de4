// Package logger configures the process-wide slog logger for mobifix.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init is
// called.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "mobifix-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // write JSON logs to a daily file in LogDir
	LogDir  string     // required when Enabled
	Level   slog.Level // minimum level; zero value is Info
	Console io.Writer  // when set and file logging is off, text logs go here
}

// Init configures L and returns a function that releases the log file.
func Init(opts Options) (func() error, error) {
	noop := func() error { return nil }
	hopts := &slog.HandlerOptions{Level: opts.Level}

	if !opts.Enabled {
		if opts.Console != nil {
			L = slog.New(slog.NewTextHandler(opts.Console, hopts))
		} else {
			L = slog.New(slog.DiscardHandler)
		}
		return noop, nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return noop, err
	}
	cleanOldLogs(opts.LogDir, time.Now())

	name := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return noop, err
	}
	L = slog.New(slog.NewJSONHandler(f, hopts))
	return func() error {
		L = slog.New(slog.DiscardHandler)
		return f.Close()
	}, nil
}

// cleanOldLogs removes log files older than retentionDays. Best effort.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// mobifix-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}
