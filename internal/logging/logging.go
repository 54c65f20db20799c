// Package logging builds the shell's structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	lj "gopkg.in/natefinch/lumberjack.v2"

	"jobshell/internal/config"
)

// Rotation defaults, used when the config leaves a value at zero.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a config level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Writer returns the destination for log records: a rotating file when
// cfg.File is set, stderr otherwise.
func Writer(cfg config.Log, stderr io.Writer) io.WriteCloser {
	if cfg.File == "" {
		return struct {
			io.Writer
			io.Closer
		}{stderr, nopCloser{}}
	}

	return &lj.Logger{
		Filename:   cfg.File,
		MaxSize:    valOr(cfg.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: valOr(cfg.MaxBackups, DefaultMaxBackups),
		MaxAge:     valOr(cfg.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   cfg.Compress,
	}
}

// New creates a logger whose records all carry a fresh session id. The
// returned closer releases the log file, if any.
func New(cfg config.Log) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	w := Writer(cfg, os.Stderr)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("session", uuid.NewString())

	return logger, w, nil
}

func valOr(v int, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
