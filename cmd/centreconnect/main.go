package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configcmd "github.com/centreconnect/centreconnect/internal/interfaces/cli/config"
	"github.com/centreconnect/centreconnect/internal/interfaces/cli/env"
	formatcmd "github.com/centreconnect/centreconnect/internal/interfaces/cli/format"
	versioncmd "github.com/centreconnect/centreconnect/internal/interfaces/cli/version"
	"github.com/centreconnect/centreconnect/internal/shared/errors"
)

func newRootCommand() *cobra.Command {
	global := &env.Options{}

	rootCmd := &cobra.Command{
		Use:           "centreconnect",
		Short:         "CentreConnect - Digital ECD Ecosystem",
		Long:          `CentreConnect presentation toolkit: locale-aware formatting of dates, currency, ages and slugs for Early Childhood Development centres.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	global.Bind(rootCmd)

	rootCmd.AddCommand(
		formatcmd.NewCommand(global),
		configcmd.NewCommand(global),
		versioncmd.NewCommand(),
	)

	return rootCmd
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(errors.ExitCode(err))
	}
}
