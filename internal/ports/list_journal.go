package ports

import (
	"context"

	"github.com/ercx-tools/ercx-cli/internal/domain"
)

// ListJournal keeps a local record of token lists touched through this CLI.
type ListJournal interface {
	Record(ctx context.Context, record domain.ListRecord) error
	List(ctx context.Context) ([]domain.ListRecord, error)
}
