package application

import (
	"context"
	"fmt"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

// CreateList creates a token list remotely and records it in the local
// journal. The remote create is the source of truth: a journal failure is
// reported but the returned record still carries the server-assigned id.
func (s *Service) CreateList(ctx context.Context, name, description string) (domain.ListRecord, error) {
	id, err := s.api.CreateList(ctx, name, description)
	if err != nil {
		return domain.ListRecord{}, err
	}

	now := s.clock.Now().UTC()
	record := domain.ListRecord{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		LastAction:  "created",
		TouchedAt:   now,
	}

	if err := s.journal.Record(ctx, record); err != nil {
		return record, fmt.Errorf("token list %s was created remotely but journaling it failed: %w", id, err)
	}

	return record, nil
}

func (s *Service) AddToken(ctx context.Context, id domain.ListID, network domain.Network, address string) error {
	if err := s.api.AddToken(ctx, id, network, address); err != nil {
		return err
	}

	return s.touch(ctx, id, fmt.Sprintf("added token %s on %s", address, network.Name()))
}

func (s *Service) RemoveToken(ctx context.Context, id domain.ListID, network domain.Network, address string) error {
	if err := s.api.RemoveToken(ctx, id, network, address); err != nil {
		return err
	}

	return s.touch(ctx, id, fmt.Sprintf("removed token %s on %s", address, network.Name()))
}

func (s *Service) ShareList(ctx context.Context, id domain.ListID, userID string, permission domain.Permission) error {
	if err := s.api.ShareList(ctx, id, userID, permission); err != nil {
		return err
	}

	return s.touch(ctx, id, fmt.Sprintf("shared with user %s (%s)", userID, permission))
}

func (s *Service) UnshareList(ctx context.Context, id domain.ListID, userID string) error {
	if err := s.api.UnshareList(ctx, id, userID); err != nil {
		return err
	}

	return s.touch(ctx, id, fmt.Sprintf("unshared user %s", userID))
}

func (s *Service) touch(ctx context.Context, id domain.ListID, action string) error {
	record := domain.ListRecord{
		ID:         id,
		LastAction: action,
		TouchedAt:  s.clock.Now().UTC(),
	}

	if err := s.journal.Record(ctx, record); err != nil {
		return fmt.Errorf("the change was applied remotely but journaling it failed: %w", err)
	}

	return nil
}
