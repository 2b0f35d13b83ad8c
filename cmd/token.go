package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ercx-tools/ercx-cli/internal/adapters/render"
	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect tokens and their evaluations",
	}

	cmd.AddCommand(
		newTokenInfoCmd(app),
		newTokenReportCmd(app),
		newTokenLevelsCmd(app),
		newTokenTestCmd(app),
	)

	return cmd
}

func newTokenInfoCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <network> <address>",
		Short: "Show the token record for a contract address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			network, err := domain.ParseNetwork(args[0])
			if err != nil {
				return err
			}

			token, err := service.TokenInfo(cmd.Context(), network, args[1])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, token)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Token(token))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newTokenReportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report <network> <address>",
		Short: "Fetch the latest full report for a token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			network, err := domain.ParseNetwork(args[0])
			if err != nil {
				return err
			}

			var raw json.RawMessage
			fetch := func(ctx context.Context) error {
				var fetchErr error
				raw, fetchErr = service.TokenReport(ctx, network, args[1])
				return fetchErr
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching token report...", fetch); err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}
}

func newTokenLevelsCmd(app *app) *cobra.Command {
	var standard int

	cmd := &cobra.Command{
		Use:   "levels <network> <address> <level>",
		Short: "Fetch the latest evaluations of a token for one test level",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			network, err := domain.ParseNetwork(args[0])
			if err != nil {
				return err
			}

			level, err := domain.ParseTestLevel(args[2])
			if err != nil {
				return err
			}

			var raw json.RawMessage
			fetch := func(ctx context.Context) error {
				var fetchErr error
				raw, fetchErr = service.TokenEvaluations(ctx, network, args[1], level, standard)
				return fetchErr
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching evaluations...", fetch); err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}

	cmd.Flags().IntVar(&standard, "standard", 0, "Narrow to one ERC standard, e.g. 20 for ERC20")

	return cmd
}

func newTokenTestCmd(app *app) *cobra.Command {
	var standard int

	cmd := &cobra.Command{
		Use:   "test <network> <address> <test-name>",
		Short: "Fetch the latest evaluation of a single property test",
		Long:  "Fetch the latest evaluation of one named property test. The list of tests is available at https://ercx.runtimeverification.com/whats-being-tested.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			network, err := domain.ParseNetwork(args[0])
			if err != nil {
				return err
			}

			raw, err := service.TestEvaluation(cmd.Context(), network, args[1], args[2], standard)
			if err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}

	cmd.Flags().IntVar(&standard, "standard", 0, "Narrow to one ERC standard, e.g. 20 for ERC20")

	return cmd
}
