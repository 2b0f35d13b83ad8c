package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReadsTrimmedValue(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "api_key"), []byte("file-secret\n"), 0o600))

	value, err := NewStore(root).Get(context.Background(), "api_key")
	require.NoError(t, err)
	assert.Equal(t, "file-secret", value)
}

func TestGetNestedKey(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ercx"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ercx", "api-key"), []byte("nested"), 0o600))

	value, err := NewStore(root).Get(context.Background(), "ercx/api-key")
	require.NoError(t, err)
	assert.Equal(t, "nested", value)
}

func TestGetMissingFileIsNotFound(t *testing.T) {
	_, err := NewStore(t.TempDir()).Get(context.Background(), "api_key")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestGetEmptyFileIsNotFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "api_key"), []byte("  \n"), 0o600))

	_, err := NewStore(root).Get(context.Background(), "api_key")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestGetRejectsPathTraversal(t *testing.T) {
	_, err := NewStore(t.TempDir()).Get(context.Background(), "../outside")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}
