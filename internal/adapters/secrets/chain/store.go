// Package chain tries secret sources in order until one yields a value.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/ercx-tools/ercx-cli/internal/adapters/secrets/file"
	passstore "github.com/ercx-tools/ercx-cli/internal/adapters/secrets/pass"
	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/ercx-tools/ercx-cli/internal/ports"
)

type Store struct {
	sources []ports.SecretSource
}

var _ ports.SecretSource = (*Store)(nil)

func NewStore(sources ...ports.SecretSource) (*Store, error) {
	if len(sources) == 0 {
		return nil, errors.New("secret chain needs at least one source")
	}
	for _, source := range sources {
		if source == nil {
			return nil, errors.New("secret chain source is nil")
		}
	}

	return &Store{sources: sources}, nil
}

// NewPassFirstWithFileFallback consults `pass` under the ercx/ namespace,
// then files under fileRoot.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStoreWithPrefix("ercx"), filestore.NewStore(fileRoot))
}

// Get returns the first value any source yields. Context errors stop the
// chain immediately; any other failure moves on to the next source.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var failures error
	for _, source := range s.sources {
		value, err := source.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if !errors.Is(err, domain.ErrSecretNotFound) && !errors.Is(err, passstore.ErrUnavailable) {
			failures = errors.Join(failures, err)
		}
	}

	if failures != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrSecretNotFound, key, failures)
	}

	return "", fmt.Errorf("%w: %s", domain.ErrSecretNotFound, key)
}
