// Package config loads the ERCx credential and base URL from config.ini,
// keeping the section and key names of the original client so existing files
// keep working:
//
//	[URLs]
//	ERCx_API_URL = https://ercx.runtimeverification.com/open-api/
//
//	[Keys]
//	ERCx_API_KEY = <key>
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

const (
	DefaultBaseURL = "https://ercx.runtimeverification.com/open-api"

	FileName  = "config.ini"
	configDir = ".ercx"

	urlSection = "URLs"
	urlKey     = "ERCx_API_URL"
	keySection = "Keys"
	keyKey     = "ERCx_API_KEY"

	envBaseURL = "ERCX_API_URL"
	envAPIKey  = "ERCX_API_KEY"

	fileMode = 0o600
	dirMode  = 0o700
)

type Config struct {
	BaseURL string
	APIKey  string
}

// Loader resolves config.ini across an ordered list of directories.
type Loader struct {
	searchPaths []string
}

// NewLoader searches the working directory first, then ~/.ercx.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	return NewLoaderWithPaths(".", filepath.Join(home, configDir)), nil
}

func NewLoaderWithPaths(paths ...string) *Loader {
	return &Loader{searchPaths: paths}
}

// Locate returns the first config.ini found on the search path.
func (l *Loader) Locate() (string, bool) {
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}

// Load reads config.ini if present and applies ERCX_API_URL / ERCX_API_KEY
// environment overrides. A missing file is not an error: the key may still
// come from the environment or a secret source. A missing key is reported by
// the caller, before any request is built.
func (l *Loader) Load() (Config, error) {
	cfg := Config{BaseURL: DefaultBaseURL}

	if path, ok := l.Locate(); ok {
		file, err := ini.Load(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}

		if url := file.Section(urlSection).Key(urlKey).String(); url != "" {
			cfg.BaseURL = url
		}
		cfg.APIKey = file.Section(keySection).Key(keyKey).String()
	}

	if url := os.Getenv(envBaseURL); url != "" {
		cfg.BaseURL = url
	}
	if key := os.Getenv(envAPIKey); key != "" {
		cfg.APIKey = key
	}

	return cfg, nil
}

// DefaultPath is where `config init` writes: ~/.ercx/config.ini.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, configDir, FileName), nil
}

// Write persists cfg as config.ini at path, creating the directory. It
// refuses to clobber an existing file unless overwrite is set.
func Write(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file := ini.Empty()
	file.Section(urlSection).Key(urlKey).SetValue(cfg.BaseURL)
	file.Section(keySection).Key(keyKey).SetValue(cfg.APIKey)

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".config-*.ini.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := file.WriteTo(tempFile); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}
