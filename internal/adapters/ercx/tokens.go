package ercx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

// TokenInfo fetches the token record for a contract address.
func (c *Client) TokenInfo(ctx context.Context, network domain.Network, address string) (domain.Token, error) {
	raw, err := c.get(ctx, fmt.Sprintf("tokens/%s/%s", network, address), nil)
	if err != nil {
		return domain.Token{}, fmt.Errorf("get token info: %w", err)
	}

	var token domain.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return domain.Token{}, fmt.Errorf("decode token info: %w", err)
	}
	if err := token.Validate(); err != nil {
		return domain.Token{}, err
	}

	return token, nil
}

// TokenReport fetches the latest full report for a token.
func (c *Client) TokenReport(ctx context.Context, network domain.Network, address string) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("tokens/%s/%s/report", network, address), nil)
	if err != nil {
		return nil, fmt.Errorf("get token report: %w", err)
	}

	return raw, nil
}

// TokenEvaluations fetches the latest evaluations for one test level.
// standard narrows results to ERC<standard> when positive.
func (c *Client) TokenEvaluations(ctx context.Context, network domain.Network, address string, level domain.TestLevel, standard int) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("tokens/%s/%s/levels/%s", network, address, level), standardQuery(standard))
	if err != nil {
		return nil, fmt.Errorf("get evaluations of level %s: %w", level, err)
	}

	return raw, nil
}

// TestEvaluation fetches the latest evaluation of a single named test.
func (c *Client) TestEvaluation(ctx context.Context, network domain.Network, address, testName string, standard int) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("tokens/%s/%s/tests/%s", network, address, testName), standardQuery(standard))
	if err != nil {
		return nil, fmt.Errorf("get evaluation of test %s: %w", testName, err)
	}

	return raw, nil
}

func standardQuery(standard int) url.Values {
	if standard <= 0 {
		return nil
	}

	query := url.Values{}
	query.Set("standard", fmt.Sprintf("ERC%d", standard))
	return query
}
