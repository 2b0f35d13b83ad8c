package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListID identifies a token list. The API hands out UUIDs, so malformed ids
// are rejected locally before a request is built.
type ListID string

func ParseListID(raw string) (ListID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidListID, raw)
	}

	return ListID(raw), nil
}

func (id ListID) String() string {
	return string(id)
}

// ListRecord is the local journal entry kept for token lists this CLI has
// created or modified. It exists so `list recent` works offline.
type ListRecord struct {
	ID          ListID
	Name        string
	Description string
	CreatedAt   time.Time
	LastAction  string
	TouchedAt   time.Time
}
