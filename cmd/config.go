package cmd

import (
	"fmt"

	configadapter "github.com/ercx-tools/ercx-cli/internal/adapters/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ERCx config file",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var key string
	var url string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a fresh config.ini with your API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configadapter.DefaultPath()
			if err != nil {
				return err
			}

			cfg := configadapter.Config{BaseURL: url, APIKey: key}
			if err := configadapter.Write(path, cfg, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "ERCx API key")
	cmd.Flags().StringVar(&url, "url", configadapter.DefaultBaseURL, "ERCx Open API base URL")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, err := configadapter.NewLoader()
			if err != nil {
				return err
			}

			if path, ok := loader.Locate(); ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			}

			defaultPath, err := configadapter.DefaultPath()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "no config file found; default location: %s\n", defaultPath)
			return err
		},
	}
}
