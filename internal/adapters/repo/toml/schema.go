package toml

import (
	"fmt"
	"time"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Lists   []listSchema `toml:"lists"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported lists schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type listSchema struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	CreatedAt   string `toml:"created_at,omitempty"`
	LastAction  string `toml:"last_action,omitempty"`
	TouchedAt   string `toml:"touched_at,omitempty"`
}

func toSchema(record domain.ListRecord) listSchema {
	return listSchema{
		ID:          record.ID.String(),
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   formatTime(record.CreatedAt),
		LastAction:  record.LastAction,
		TouchedAt:   formatTime(record.TouchedAt),
	}
}

func fromSchema(entry listSchema) domain.ListRecord {
	return domain.ListRecord{
		ID:          domain.ListID(entry.ID),
		Name:        entry.Name,
		Description: entry.Description,
		CreatedAt:   parseTime(entry.CreatedAt),
		LastAction:  entry.LastAction,
		TouchedAt:   parseTime(entry.TouchedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
