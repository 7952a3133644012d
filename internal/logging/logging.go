// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the zerolog logger used across planchat.
//
// While the full-screen UI runs it owns the terminal, so logs go to a
// rotated file only. Line mode may additionally log to stderr.
//
// # Usage
//
//	closer, err := logging.Init(logging.Options{
//	    Level:  "info",
//	    Format: "json",
//	    File:   "~/.planchat/planchat.log",
//	})
//	defer closer.Close()
//	log.Info().Msg("started")
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

// Options selects where and how much to log.
type Options struct {
	// Level is "debug", "info", "warn" or "error"; empty means info
	Level string
	// Format is "json" or "text"
	Format string
	// File is the rotated log file; empty disables file output
	File string
	// Stderr also writes to standard error
	Stderr bool
	// WithCaller adds file:line to every event
	WithCaller bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from opts. The returned closer releases the log file.
// With neither File nor Stderr set the logger discards everything.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if opts.Stderr {
		if opts.Format == "text" {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		} else {
			writers = append(writers, os.Stderr)
		}
	}

	if opts.File != "" {
		path, err := expandHome(opts.File)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    MaxSizeMB, // megabytes
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays, // days
		}
		closer = rotator
		if opts.Format == "text" {
			writers = append(writers, zerolog.ConsoleWriter{NoColor: true, Out: rotator})
		} else {
			writers = append(writers, rotator)
		}
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp()
	if opts.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), closer, nil
}

// Init builds a logger from opts and installs it as the global log.Logger.
func Init(opts Options) (io.Closer, error) {
	logger, closer, err := New(opts)
	if err != nil {
		return closer, err
	}
	log.Logger = logger
	zerolog.SetGlobalLevel(logger.GetLevel())
	return closer, nil
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
