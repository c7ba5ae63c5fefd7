package cli

import (
	"fmt"

	"trackpace/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the trackpace config file",
	}

	c.AddCommand(newConfigInitCmd(opts))
	return c
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}

			written, err := config.CreateExample(path)
			if err != nil {
				return fmt.Errorf("creating example config: %w", err)
			}

			out := cmd.OutOrStdout()
			if !written {
				fmt.Fprintf(out, "Config already exists at:\n  %s\n", path)
				return nil
			}
			fmt.Fprintf(out, "Wrote example config to:\n  %s\n", path)
			return nil
		},
	}
}
