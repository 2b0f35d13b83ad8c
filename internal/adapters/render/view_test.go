package render

import (
	"testing"
	"time"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenCardShowsFields(t *testing.T) {
	out := Token(domain.Token{
		ID:          "tok-1",
		Name:        "Tether USD",
		Address:     "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		Symbol:      "USDT",
		Decimals:    "6",
		TotalSupply: "39030615894930051",
		Network:     "1",
	})

	assert.Contains(t, out, "Tether USD (USDT)")
	assert.Contains(t, out, "0xdAC17F958D2ee523a2206206994597C13D831ec7")
	assert.Contains(t, out, "mainnet (1)")
	assert.Contains(t, out, "39030615894930051")
}

func TestTokenCardKeepsUnknownNetworkRaw(t *testing.T) {
	out := Token(domain.Token{Name: "Mystery", Symbol: "MYS", Network: "42"})
	assert.Contains(t, out, "network: 42")
}

func TestJournalEmpty(t *testing.T) {
	out := Journal(nil, Options{Now: time.Now()})
	assert.Contains(t, out, "recorded: 0")
	assert.Contains(t, out, "No token lists recorded yet")
}

func TestJournalRendersRecordsWithAge(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	records := []domain.ListRecord{
		{
			ID:          "228856f0-7e27-47cf-aea6-978e814f7f1b",
			Name:        "My token list",
			Description: "stablecoins",
			LastAction:  "created",
			TouchedAt:   now.Add(-3 * time.Hour),
		},
	}

	out := Journal(records, Options{Now: now})
	assert.Contains(t, out, "My token list (228856f0-7e27-47cf-aea6-978e814f7f1b)")
	assert.Contains(t, out, "stablecoins")
	assert.Contains(t, out, "last action: created (3h ago)")
	assert.Contains(t, out, "recorded: 1")
}
