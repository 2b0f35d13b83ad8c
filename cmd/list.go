package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ercx-tools/ercx-cli/internal/adapters/render"
	"github.com/ercx-tools/ercx-cli/internal/application"
	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage token lists",
	}

	cmd.AddCommand(
		newListQueryCmd(app, "show <id>", "Show the metadata of a token list", (*application.Service).ListInfo),
		newListQueryCmd(app, "tokens <id>", "Show the tokens of a token list", (*application.Service).ListTokens),
		newListQueryCmd(app, "users <id>", "Show the users a token list is shared with", (*application.Service).ListUsers),
		newListQueryCmd(app, "count <id>", "Show the number of tokens in a token list", (*application.Service).ListTokensCount),
		newListCreateCmd(app),
		newListAddCmd(app),
		newListRemoveCmd(app),
		newListShareCmd(app),
		newListUnshareCmd(app),
		newListRecentCmd(app),
	)

	return cmd
}

func newListQueryCmd(app *app, use, short string, query func(*application.Service, context.Context, domain.ListID) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			id, err := domain.ParseListID(args[0])
			if err != nil {
				return err
			}

			raw, err := query(service, cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeRawJSON(cmd, raw)
		},
	}
}

func newListCreateCmd(app *app) *cobra.Command {
	var name string
	var description string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a token list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			record, err := service.CreateList(cmd.Context(), name, description)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, record)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created token list %q with id %s\n", record.Name, record.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the new token list")
	cmd.Flags().StringVar(&description, "description", "", "Description of the new token list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newListAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <network> <address>",
		Short: "Add a token to a token list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, id, network, err := listMutationArgs(app, args)
			if err != nil {
				return err
			}

			if err := service.AddToken(cmd.Context(), id, network, args[2]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added token %s to list %s\n", args[2], id)
			return err
		},
	}
}

func newListRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id> <network> <address>",
		Short: "Remove a token from a token list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, id, network, err := listMutationArgs(app, args)
			if err != nil {
				return err
			}

			if err := service.RemoveToken(cmd.Context(), id, network, args[2]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed token %s from list %s\n", args[2], id)
			return err
		},
	}
}

func listMutationArgs(app *app, args []string) (*application.Service, domain.ListID, domain.Network, error) {
	service, err := app.requireService()
	if err != nil {
		return nil, "", 0, err
	}

	id, err := domain.ParseListID(args[0])
	if err != nil {
		return nil, "", 0, err
	}

	network, err := domain.ParseNetwork(args[1])
	if err != nil {
		return nil, "", 0, err
	}

	return service, id, network, nil
}

func newListShareCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id> <user-id> <permission>",
		Short: "Share a token list with a user (READ, WRITE or ADMIN)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			id, err := domain.ParseListID(args[0])
			if err != nil {
				return err
			}

			permission, err := domain.ParsePermission(args[2])
			if err != nil {
				return err
			}

			if err := service.ShareList(cmd.Context(), id, args[1], permission); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Shared list %s with user %s (%s)\n", id, args[1], permission)
			return err
		},
	}
}

func newListUnshareCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unshare <id> <user-id>",
		Short: "Revoke a user's access to a token list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.requireService()
			if err != nil {
				return err
			}

			id, err := domain.ParseListID(args[0])
			if err != nil {
				return err
			}

			if err := service.UnshareList(cmd.Context(), id, args[1]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unshared list %s from user %s\n", id, args[1])
			return err
		},
	}
}

func newListRecentCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show token lists recorded by this CLI (offline)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, err := app.requireJournal()
			if err != nil {
				return err
			}

			records, err := journal.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, records)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Journal(records, render.Options{Now: app.now()}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
