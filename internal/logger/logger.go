// Package logger configures the global zerolog logger for the toolkit:
// console output for interactive runs and an optional rotating log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options defines logger initialization parameters.
type Options struct {
	Level  string
	Pretty bool
	File   string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init sets up the global logger. Operations write to stderr so operation
// results on stdout stay machine-readable.
func Init(opts Options) error {
	var writers []io.Writer

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		})
	}

	if opts.Pretty {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		writers = append(writers, os.Stderr)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
	return nil
}
