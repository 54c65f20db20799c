package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobshell/internal/config"
	"jobshell/internal/logging"
	"jobshell/internal/shell"
)

type cliConfig struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &cliConfig{}

	c := &cobra.Command{
		Use:           "jobshell",
		Short:         "Interactive shell that tracks background jobs",
		Example:       "jobshell --config ~/.jobshell.yml",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runShell(cfg)
		},
	}

	c.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	c.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return c
}

func loadConfig(opts *cliConfig) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	return cfg, nil
}

func runShell(cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer closer.Close()

	s, err := shell.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("error initializing shell: %w", err)
	}
	defer s.Close()

	logger.Debug("shell started")
	return s.Run()
}
