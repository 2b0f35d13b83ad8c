package ercx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

type tokenRef struct {
	Address string `json:"address"`
	Network int    `json:"network"`
}

// ListInfo fetches the metadata of a token list.
func (c *Client) ListInfo(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("token-lists/%s", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get token list %s: %w", id, err)
	}

	return raw, nil
}

// ListTokens fetches the tokens of a token list.
func (c *Client) ListTokens(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("token-lists/%s/tokens", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get tokens of list %s: %w", id, err)
	}

	return raw, nil
}

// ListUsers fetches the users a token list is shared with.
func (c *Client) ListUsers(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("token-lists/%s/users", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get users of list %s: %w", id, err)
	}

	return raw, nil
}

// ListTokensCount fetches the number of tokens in a token list.
func (c *Client) ListTokensCount(ctx context.Context, id domain.ListID) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("token-lists/%s/tokens-count", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get tokens count of list %s: %w", id, err)
	}

	return raw, nil
}

// CreateList creates a token list and returns its server-assigned id.
func (c *Client) CreateList(ctx context.Context, name, description string) (domain.ListID, error) {
	body := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{Name: name, Description: description}

	raw, err := c.post(ctx, "token-lists", body)
	if err != nil {
		return "", fmt.Errorf("create token list %q: %w", name, err)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return "", fmt.Errorf("decode created token list: %w", err)
	}
	if created.ID == "" {
		return "", errors.New("create token list: response carries no id")
	}

	return domain.ListID(created.ID), nil
}

// AddToken adds a token to a token list.
func (c *Client) AddToken(ctx context.Context, id domain.ListID, network domain.Network, address string) error {
	if _, err := c.post(ctx, fmt.Sprintf("token-lists/%s/tokens", id), tokenRef{Address: address, Network: int(network)}); err != nil {
		return fmt.Errorf("add token %s to list %s: %w", address, id, err)
	}

	return nil
}

// RemoveToken removes a token from a token list.
func (c *Client) RemoveToken(ctx context.Context, id domain.ListID, network domain.Network, address string) error {
	if _, err := c.delete(ctx, fmt.Sprintf("token-lists/%s/tokens", id), tokenRef{Address: address, Network: int(network)}); err != nil {
		return fmt.Errorf("remove token %s from list %s: %w", address, id, err)
	}

	return nil
}

// ShareList grants a user access to a token list.
func (c *Client) ShareList(ctx context.Context, id domain.ListID, userID string, permission domain.Permission) error {
	body := struct {
		UserID     string `json:"userId"`
		Permission string `json:"permission"`
	}{UserID: userID, Permission: permission.String()}

	if _, err := c.post(ctx, fmt.Sprintf("token-lists/%s/users", id), body); err != nil {
		return fmt.Errorf("share list %s with user %s: %w", id, userID, err)
	}

	return nil
}

// UnshareList revokes a user's access to a token list.
func (c *Client) UnshareList(ctx context.Context, id domain.ListID, userID string) error {
	if _, err := c.delete(ctx, fmt.Sprintf("token-lists/%s/users/%s", id, userID), nil); err != nil {
		return fmt.Errorf("unshare list %s from user %s: %w", id, userID, err)
	}

	return nil
}
