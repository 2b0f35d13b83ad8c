// Package file reads secrets from plain files under a root directory, e.g.
// ~/.ercx/api_key.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/ercx-tools/ercx-cli/internal/ports"
)

type Store struct {
	root string
}

var _ ports.SecretSource = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrSecretNotFound, key)
		}
		return "", fmt.Errorf("read file secret %q: %w", key, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrSecretNotFound, key)
	}

	return value, nil
}

func (s *Store) pathForKey(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid secret key %q", key)
	}

	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}
