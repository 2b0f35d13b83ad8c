package ercx

import (
	"context"
	"encoding/json"
	"fmt"
)

// CurrentUser fetches the profile of the key's owner.
func (c *Client) CurrentUser(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.get(ctx, "user", nil)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}

	return raw, nil
}

// TokenLists fetches the token lists the user owns.
func (c *Client) TokenLists(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.get(ctx, "user/token-lists", nil)
	if err != nil {
		return nil, fmt.Errorf("get user token lists: %w", err)
	}

	return raw, nil
}

// SharedTokenLists fetches the token lists shared with the user.
func (c *Client) SharedTokenLists(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.get(ctx, "user/shared-token-lists", nil)
	if err != nil {
		return nil, fmt.Errorf("get shared token lists: %w", err)
	}

	return raw, nil
}

// BookmarkedTokens fetches the user's bookmarked tokens.
func (c *Client) BookmarkedTokens(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.get(ctx, "user/bookmarked-tokens", nil)
	if err != nil {
		return nil, fmt.Errorf("get bookmarked tokens: %w", err)
	}

	return raw, nil
}

// BookmarkedTokensCount fetches the number of bookmarked tokens.
func (c *Client) BookmarkedTokensCount(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.get(ctx, "user/bookmarked-tokens-count", nil)
	if err != nil {
		return nil, fmt.Errorf("get bookmarked tokens count: %w", err)
	}

	return raw, nil
}
