package cmd

import (
	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTestsCmd(app *app) *cobra.Command {
	var levelFlag string

	cmd := &cobra.Command{
		Use:   "tests",
		Short: "List the ERC-20 property tests the service runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			var level domain.TestLevel
			if levelFlag != "" {
				level, err = domain.ParseTestLevel(levelFlag)
				if err != nil {
					return err
				}
			}

			raw, err := service.PropertyTests(cmd.Context(), level)
			if err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}

	cmd.Flags().StringVar(&levelFlag, "level", "", "Narrow to one test level (abi, minimal, recommended, desirable, addon, fingerprint)")

	return cmd
}
