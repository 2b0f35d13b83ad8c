package ercx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

// PropertyTests lists the ERC-20 property tests the service runs, optionally
// narrowed to one level. An empty level returns every test.
func (c *Client) PropertyTests(ctx context.Context, level domain.TestLevel) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("standard", "ERC20")
	if level != "" {
		query.Set("level", level.String())
	}

	raw, err := c.get(ctx, "property-tests", query)
	if err != nil {
		return nil, fmt.Errorf("get property tests: %w", err)
	}

	return raw, nil
}
