package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"bookbinder/internal/config"
	"bookbinder/internal/logging"
)

// commandContext lazily resolves shared state for every subcommand: the
// configuration file and the logger built from it. Command-line flags win
// over config values.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	once       sync.Once
	config     *config.Config
	logger     *slog.Logger
	resolveErr error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) resolve() error {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.resolveErr = err
			return
		}

		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = *c.logLevelFlag
		}
		format := cfg.Logging.Format
		if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
			format = *c.logFormatFlag
		}
		logger, err := logging.New(logging.Options{Level: level, Format: format})
		if err != nil {
			c.resolveErr = err
			return
		}

		c.config = cfg
		c.logger = logger
	})
	return c.resolveErr
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c.config, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c.logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
