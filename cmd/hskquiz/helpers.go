package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/hskquiz/internal/config"
	"github.com/at-ishikawa/hskquiz/internal/logging"
)

// loadConfig loads the configuration, lets the named flags override it and
// installs the configured logger as the default one.
func (opts *rootOptions) loadConfig(flags *pflag.FlagSet, flagNames map[string]string) (*config.Config, *slog.Logger, error) {
	loader, err := config.NewConfigLoader(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	if err := loader.BindFlags(flags, flagNames); err != nil {
		return nil, nil, fmt.Errorf("loader.BindFlags() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(opts.stderr, cfg.Log.Format, opts.debugMode)
	if err != nil {
		return nil, nil, fmt.Errorf("logging.New() > %w", err)
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}
