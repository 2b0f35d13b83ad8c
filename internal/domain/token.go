package domain

import "fmt"

// Token is the ERCx view of a deployed token contract. All fields arrive as
// strings on the wire, including decimals and total supply.
type Token struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Symbol      string `json:"symbol"`
	Decimals    string `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
	Network     string `json:"network"`
}

// Validate rejects payloads missing the fields every token record carries.
func (t Token) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"id", t.ID},
		{"name", t.Name},
		{"address", t.Address},
		{"symbol", t.Symbol},
		{"decimals", t.Decimals},
		{"totalSupply", t.TotalSupply},
		{"network", t.Network},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("token payload missing attribute %q", field.name)
		}
	}

	return nil
}
