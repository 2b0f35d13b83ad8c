package application

import (
	"context"
	"encoding/json"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

func (s *Service) TokenInfo(ctx context.Context, network domain.Network, address string) (domain.Token, error) {
	return s.api.TokenInfo(ctx, network, address)
}

func (s *Service) TokenReport(ctx context.Context, network domain.Network, address string) (json.RawMessage, error) {
	return s.api.TokenReport(ctx, network, address)
}

func (s *Service) TokenEvaluations(ctx context.Context, network domain.Network, address string, level domain.TestLevel, standard int) (json.RawMessage, error) {
	return s.api.TokenEvaluations(ctx, network, address, level, standard)
}

func (s *Service) TestEvaluation(ctx context.Context, network domain.Network, address, testName string, standard int) (json.RawMessage, error) {
	return s.api.TestEvaluation(ctx, network, address, testName, standard)
}

func (s *Service) PropertyTests(ctx context.Context, level domain.TestLevel) (json.RawMessage, error) {
	return s.api.PropertyTests(ctx, level)
}

func (s *Service) CurrentUser(ctx context.Context) (json.RawMessage, error) {
	return s.api.CurrentUser(ctx)
}

func (s *Service) TokenLists(ctx context.Context) (json.RawMessage, error) {
	return s.api.TokenLists(ctx)
}

func (s *Service) SharedTokenLists(ctx context.Context) (json.RawMessage, error) {
	return s.api.SharedTokenLists(ctx)
}

func (s *Service) BookmarkedTokens(ctx context.Context) (json.RawMessage, error) {
	return s.api.BookmarkedTokens(ctx)
}

func (s *Service) BookmarkedTokensCount(ctx context.Context) (json.RawMessage, error) {
	return s.api.BookmarkedTokensCount(ctx)
}

func (s *Service) ListInfo(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	return s.api.ListInfo(ctx, id)
}

func (s *Service) ListTokens(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	return s.api.ListTokens(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	return s.api.ListUsers(ctx, id)
}

func (s *Service) ListTokensCount(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	return s.api.ListTokensCount(ctx, id)
}

// RecentLists reads the local journal; it never touches the network.
func (s *Service) RecentLists(ctx context.Context) ([]domain.ListRecord, error) {
	return s.journal.List(ctx)
}
