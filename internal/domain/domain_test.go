package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetworkAcceptsNamesAndChainIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Network
	}{
		{name: "mainnet by name", raw: "Mainnet", want: NetworkMainnet},
		{name: "mainnet by chain id", raw: "1", want: NetworkMainnet},
		{name: "goerli by name", raw: "goerli", want: NetworkGoerli},
		{name: "goerli by chain id", raw: "5", want: NetworkGoerli},
		{name: "sepolia by name", raw: "SEPOLIA", want: NetworkSepolia},
		{name: "sepolia by chain id", raw: "11155111", want: NetworkSepolia},
		{name: "surrounding whitespace", raw: " mainnet ", want: NetworkMainnet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNetwork(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNetworkRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "ropsten", "0x1", "2"} {
		_, err := ParseNetwork(raw)
		require.ErrorIs(t, err, ErrUnknownNetwork, "input %q", raw)
	}
}

func TestNetworkRendersAsChainID(t *testing.T) {
	assert.Equal(t, "1", NetworkMainnet.String())
	assert.Equal(t, "11155111", NetworkSepolia.String())
	assert.Equal(t, "goerli", NetworkGoerli.Name())
}

func TestParseTestLevel(t *testing.T) {
	level, err := ParseTestLevel("Minimal")
	require.NoError(t, err)
	assert.Equal(t, LevelMinimal, level)

	_, err = ParseTestLevel("extreme")
	assert.ErrorIs(t, err, ErrUnknownTestLevel)
}

func TestParsePermissionIsCaseInsensitive(t *testing.T) {
	permission, err := ParsePermission("write")
	require.NoError(t, err)
	assert.Equal(t, PermissionWrite, permission)

	_, err = ParsePermission("OWNER")
	assert.ErrorIs(t, err, ErrUnknownPermission)
}

func TestParseListIDRequiresUUID(t *testing.T) {
	id, err := ParseListID("228856f0-7e27-47cf-aea6-978e814f7f1b")
	require.NoError(t, err)
	assert.Equal(t, "228856f0-7e27-47cf-aea6-978e814f7f1b", id.String())

	_, err = ParseListID("my-token-list-1694605502")
	assert.ErrorIs(t, err, ErrInvalidListID)
}

func TestTokenValidateReportsMissingAttribute(t *testing.T) {
	token := Token{
		ID:          "tok-1",
		Name:        "Tether USD",
		Address:     "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		Symbol:      "USDT",
		Decimals:    "6",
		TotalSupply: "39030615894930051",
		Network:     "1",
	}
	require.NoError(t, token.Validate())

	token.Symbol = ""
	err := token.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"symbol"`)
}
