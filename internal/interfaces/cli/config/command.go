package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/centreconnect/centreconnect/internal/interfaces/cli/env"
	"github.com/centreconnect/centreconnect/internal/shared/format"
	"github.com/centreconnect/centreconnect/internal/shared/logger"
)

func NewCommand(global *env.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
		Long:  `Show or validate the configuration assembled from defaults, the config file and CENTRECONNECT_* environment variables.`,
	}

	cmd.AddCommand(
		newShowCommand(global),
		newValidateCommand(global),
	)

	return cmd
}

func newShowCommand(global *env.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.Init(global)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func newValidateCommand(global *env.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration",
		Long:  `Validate every config section and check that the locale and currency are supported by the formatter.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.Init(global)
			if err != nil {
				return err
			}

			opts, err := env.FormatterOptions(cfg)
			if err != nil {
				return err
			}
			f, err := format.New(opts...)
			if err != nil {
				logger.Warn("configuration rejected", "locale", cfg.Locale.Tag, "currency", cfg.Locale.Currency, "error", err)
				return fmt.Errorf("unsupported locale settings: %w", err)
			}
			logger.Info("configuration validated", "locale", f.Locale(), "currency", f.Currency())

			fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid (locale %s, currency %s, timezone %s)\n",
				f.Locale(), f.Currency(), f.Location())
			return nil
		},
	}
}
