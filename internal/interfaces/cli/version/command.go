package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centreconnect/centreconnect/internal/shared/errors"
	"github.com/centreconnect/centreconnect/internal/shared/version"
)

func NewCommand() *cobra.Command {
	var latest string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Long:  `Print the build version. With --latest, also report whether that release is newer than this build.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.String())

			if latest == "" {
				return nil
			}
			if !version.Valid(latest) {
				return errors.NewBadRequestError("invalid --latest version", latest)
			}
			if version.HasNewerVersion(version.Version, latest) {
				fmt.Fprintf(out, "update available: %s\n", version.Normalize(latest))
			} else {
				fmt.Fprintln(out, "up to date")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&latest, "latest", "", "Latest published release to compare against (e.g. v1.2.0)")

	return cmd
}
