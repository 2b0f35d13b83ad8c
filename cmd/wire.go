package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	configadapter "github.com/ercx-tools/ercx-cli/internal/adapters/config"
	"github.com/ercx-tools/ercx-cli/internal/adapters/ercx"
	tomlrepo "github.com/ercx-tools/ercx-cli/internal/adapters/repo/toml"
	chainstore "github.com/ercx-tools/ercx-cli/internal/adapters/secrets/chain"
	"github.com/ercx-tools/ercx-cli/internal/application"
	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/ercx-tools/ercx-cli/internal/ports"
	"github.com/spf13/viper"
)

const secretLookupTimeout = 3 * time.Second

// app carries everything the online commands need. Wiring failures are held,
// not fatal: commands that never touch the network or the journal (`version`,
// `config init`) must keep working.
type app struct {
	service    *application.Service
	serviceErr error
	journal    ports.ListJournal
	cfg        configadapter.Config
	now        func() time.Time
}

func wireApp() *app {
	a := &app{now: time.Now}

	loader, err := configadapter.NewLoader()
	if err != nil {
		a.serviceErr = fmt.Errorf("wire config loader: %w", err)
		return a
	}

	cfg, err := loader.Load()
	if err != nil {
		a.serviceErr = fmt.Errorf("load config: %w", err)
		return a
	}
	a.cfg = cfg

	journal, err := tomlrepo.NewJournal(viper.New())
	if err != nil {
		a.serviceErr = fmt.Errorf("wire lists journal: %w", err)
		return a
	}
	a.journal = journal

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = lookupFallbackKey()
	}

	if apiKey == "" {
		a.serviceErr = fmt.Errorf("%w: add it to config.ini, set ERCX_API_KEY, or run `ercx config init --key <key>`", domain.ErrAPIKeyMissing)
		return a
	}

	client, err := ercx.New(cfg.BaseURL, apiKey)
	if err != nil {
		a.serviceErr = fmt.Errorf("wire ercx client: %w", err)
		return a
	}

	a.service = application.NewService(client, journal, ports.SystemClock{})
	return a
}

// lookupFallbackKey consults `pass` (ercx/api_key) and ~/.ercx/api_key when
// config.ini and the environment carry no key. Failures here only mean the
// key stays unresolved.
func lookupFallbackKey() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	store, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".ercx"))
	if err != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), secretLookupTimeout)
	defer cancel()

	value, err := store.Get(ctx, "api_key")
	if err != nil {
		return ""
	}

	return value
}

// requireService gates commands that talk to the API, failing before any
// request is built when no key is configured or wiring failed.
func (a *app) requireService() (*application.Service, error) {
	if a.service == nil {
		return nil, a.serviceErr
	}

	return a.service, nil
}

// requireJournal gates the offline journal commands.
func (a *app) requireJournal() (ports.ListJournal, error) {
	if a.journal == nil {
		return nil, a.serviceErr
	}

	return a.journal, nil
}
