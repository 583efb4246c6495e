// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"blog-store/internal/config"
)

// New returns a logrus logger configured with the level and format from cfg.
func New(cfg config.Config) (*logrus.Logger, error) {
	logger := logrus.New()

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}

	level := strings.TrimSpace(cfg.Log.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(parsed)

	return logger, nil
}
