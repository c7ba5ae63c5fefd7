package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"trackpace/internal/config"
	"trackpace/internal/logger"
	"trackpace/internal/pacing"
	"trackpace/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	mode       string
	debug      bool

	cleanup func() error
}

// Execute runs the trackpace command tree with the process arguments
func Execute() error {
	cmd, opts := newRootCmd()
	return opts.execute(cmd)
}

// newRootCmd builds the trackpace command tree
func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "trackpace",
		Short:         "Convert running pace and speed and project track split times",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.setupLogger()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return opts.closeLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			mode := cfg.Mode()
			if opts.mode != "" {
				if mode, err = pacing.ParseMode(opts.mode); err != nil {
					return err
				}
			}

			if err := tui.Run(cfg, mode); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.trackpace/config.json)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to the logs directory next to the config file")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "start in \"pace\" or \"speed\" entry mode")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newSplitsCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd, opts
}

// execute runs cmd and flushes the log file on every exit path.
// cobra skips the post-run hooks when a command fails.
func (o *rootOptions) execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		logger.L().Error("command failed", zap.Error(err))
	}
	if cerr := o.closeLogger(); err == nil {
		err = cerr
	}
	return err
}

func (o *rootOptions) closeLogger() error {
	if o.cleanup == nil {
		return nil
	}
	cleanup := o.cleanup
	o.cleanup = nil
	return cleanup()
}

func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.GetConfigPath()
}

func (o *rootOptions) setupLogger() error {
	path, err := o.resolveConfigPath()
	if err != nil {
		return err
	}

	cleanup, err := logger.Setup(logger.Config{
		Dir:   filepath.Dir(path),
		Debug: o.debug,
	})
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	o.cleanup = cleanup
	return nil
}

// loadConfig reads and validates the config file.
// A missing file is not an error; the defaults apply.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadFrom(path)
	if errors.Is(err, config.ErrNoConfig) {
		logger.L().Debug("no config file, using defaults", zap.String("path", path))
		defaults := config.DefaultConfig()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger.L().Debug("config loaded", zap.String("path", path))
	return cfg, nil
}
