// Package toml persists the local token-list journal as ~/.ercx/lists.toml.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/ercx-tools/ercx-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	settingsName    = "settings"
	settingsType    = "toml"
	journalPathKey  = "lists.path"
	journalFileMode = 0o600
	journalDirMode  = 0o700
	journalDir      = ".ercx"
	journalFile     = "lists.toml"
	tempFilePattern = ".lists-*.toml.tmp"
)

// Journal records token lists this CLI has created or modified. Writes go
// through a temp file and rename; concurrent use within a process is guarded
// by a per-path lock.
type Journal struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ListJournal = (*Journal)(nil)

// NewJournal resolves the journal path, honoring an optional
// ~/.ercx/settings.toml with a `lists.path` override.
func NewJournal(cfg *viper.Viper) (*Journal, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, journalDir, journalFile)

	cfg.SetConfigName(settingsName)
	cfg.SetConfigType(settingsType)
	cfg.AddConfigPath(filepath.Join(homeDir, journalDir))
	cfg.SetDefault(journalPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	}

	journalPath := cfg.GetString(journalPathKey)
	if journalPath == "" {
		return nil, errors.New("journal path is empty")
	}
	journalPath, err = filepath.Abs(journalPath)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}
	journalPath = filepath.Clean(journalPath)

	return &Journal{path: journalPath, mu: lockForPath(journalPath)}, nil
}

// Record upserts by list id. An existing entry keeps its created_at when the
// incoming record carries none.
func (j *Journal) Record(ctx context.Context, record domain.ListRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := j.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(record)
	updated := false
	for i := range file.Lists {
		if file.Lists[i].ID == encoded.ID {
			if encoded.CreatedAt == "" {
				encoded.CreatedAt = file.Lists[i].CreatedAt
			}
			if encoded.Name == "" {
				encoded.Name = file.Lists[i].Name
			}
			if encoded.Description == "" {
				encoded.Description = file.Lists[i].Description
			}
			file.Lists[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Lists = append(file.Lists, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return j.writeSchema(file)
}

// List returns journal entries, most recently touched first.
func (j *Journal) List(ctx context.Context) ([]domain.ListRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	file, err := j.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	records := make([]domain.ListRecord, 0, len(file.Lists))
	for _, entry := range file.Lists {
		records = append(records, fromSchema(entry))
	}

	sort.SliceStable(records, func(i, k int) bool {
		return records[i].TouchedAt.After(records[k].TouchedAt)
	})

	return records, nil
}

func (j *Journal) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read lists journal: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode lists journal: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (j *Journal) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(j.path), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode lists journal: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(j.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}
	if err := tempFile.Chmod(journalFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}

	if err := os.Rename(tempName, j.path); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}
	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
