// Package logging builds the application logger from configuration.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abhisek/pandamj/internal/config"
	"github.com/abhisek/pandamj/internal/store"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured from cfg. When cfg.File is set, output
// goes to a size-rotated file; otherwise it goes to fallback. The returned
// closer releases the log file.
func New(cfg config.LogConfig, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: cfg.File != ""})
	}

	if cfg.File == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		logger.SetOutput(fallback)
		return logger, nopCloser{}, nil
	}

	if err := store.EnsureDir(cfg.File); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	logger.SetOutput(rotator)
	return logger, rotator, nil
}
