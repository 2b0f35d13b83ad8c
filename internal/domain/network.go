package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Network identifies an Ethereum network by its chain id. The ERCx API
// addresses tokens as tokens/{chain-id}/{address}.
type Network int

const (
	NetworkMainnet Network = 1
	NetworkGoerli  Network = 5
	NetworkSepolia Network = 11155111
)

// ParseNetwork accepts a network name (case-insensitive) or its chain id.
func ParseNetwork(raw string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mainnet", "1":
		return NetworkMainnet, nil
	case "goerli", "5":
		return NetworkGoerli, nil
	case "sepolia", "11155111":
		return NetworkSepolia, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, raw)
}

// String renders the chain id, which is the form the API expects in paths
// and request bodies.
func (n Network) String() string {
	return strconv.Itoa(int(n))
}

func (n Network) Name() string {
	switch n {
	case NetworkMainnet:
		return "mainnet"
	case NetworkGoerli:
		return "goerli"
	case NetworkSepolia:
		return "sepolia"
	}

	return n.String()
}
