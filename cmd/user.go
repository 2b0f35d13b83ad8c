package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect the authenticated user",
	}

	cmd.AddCommand(
		newUserQueryCmd(app, "info", "Show the profile of the logged-in user", func(s serviceQueries, ctx context.Context) (json.RawMessage, error) {
			return s.CurrentUser(ctx)
		}),
		newUserQueryCmd(app, "lists", "Show the token lists you own", func(s serviceQueries, ctx context.Context) (json.RawMessage, error) {
			return s.TokenLists(ctx)
		}),
		newUserQueryCmd(app, "shared", "Show the token lists shared with you", func(s serviceQueries, ctx context.Context) (json.RawMessage, error) {
			return s.SharedTokenLists(ctx)
		}),
		newUserBookmarksCmd(app),
	)

	return cmd
}

// serviceQueries is the slice of the application service the user commands
// need, so each subcommand stays a one-liner.
type serviceQueries interface {
	CurrentUser(ctx context.Context) (json.RawMessage, error)
	TokenLists(ctx context.Context) (json.RawMessage, error)
	SharedTokenLists(ctx context.Context) (json.RawMessage, error)
	BookmarkedTokens(ctx context.Context) (json.RawMessage, error)
	BookmarkedTokensCount(ctx context.Context) (json.RawMessage, error)
}

func newUserQueryCmd(app *app, use, short string, query func(serviceQueries, context.Context) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			raw, err := query(service, cmd.Context())
			if err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}
}

func newUserBookmarksCmd(app *app) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Show your bookmarked tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			query := service.BookmarkedTokens
			if countOnly {
				query = service.BookmarkedTokensCount
			}

			raw, err := query(cmd.Context())
			if err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of bookmarked tokens")

	return cmd
}
