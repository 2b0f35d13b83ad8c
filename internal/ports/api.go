package ports

import (
	"context"
	"encoding/json"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

// TokenAPI covers the token inspection endpoints. Payloads the service does
// not document a stable schema for stay raw and are rendered as JSON.
type TokenAPI interface {
	TokenInfo(ctx context.Context, network domain.Network, address string) (domain.Token, error)
	TokenReport(ctx context.Context, network domain.Network, address string) (json.RawMessage, error)
	TokenEvaluations(ctx context.Context, network domain.Network, address string, level domain.TestLevel, standard int) (json.RawMessage, error)
	TestEvaluation(ctx context.Context, network domain.Network, address, testName string, standard int) (json.RawMessage, error)
	PropertyTests(ctx context.Context, level domain.TestLevel) (json.RawMessage, error)
}

// UserAPI covers endpoints scoped to the authenticated user.
type UserAPI interface {
	CurrentUser(ctx context.Context) (json.RawMessage, error)
	TokenLists(ctx context.Context) (json.RawMessage, error)
	SharedTokenLists(ctx context.Context) (json.RawMessage, error)
	BookmarkedTokens(ctx context.Context) (json.RawMessage, error)
	BookmarkedTokensCount(ctx context.Context) (json.RawMessage, error)
}

// ListAPI covers token list management.
type ListAPI interface {
	ListInfo(ctx context.Context, id domain.ListID) (json.RawMessage, error)
	ListTokens(ctx context.Context, id domain.ListID) (json.RawMessage, error)
	ListUsers(ctx context.Context, id domain.ListID) (json.RawMessage, error)
	ListTokensCount(ctx context.Context, id domain.ListID) (json.RawMessage, error)
	CreateList(ctx context.Context, name, description string) (domain.ListID, error)
	AddToken(ctx context.Context, id domain.ListID, network domain.Network, address string) error
	RemoveToken(ctx context.Context, id domain.ListID, network domain.Network, address string) error
	ShareList(ctx context.Context, id domain.ListID, userID string, permission domain.Permission) error
	UnshareList(ctx context.Context, id domain.ListID, userID string) error
}

// API is the full ERCx Open API surface the CLI drives.
type API interface {
	TokenAPI
	UserAPI
	ListAPI
}
