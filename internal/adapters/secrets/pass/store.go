// Package pass reads secrets from the standard unix password manager.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/ercx-tools/ercx-cli/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

type Store struct {
	run    runFunc
	prefix string
}

var _ ports.SecretSource = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

// NewStoreWithPrefix namespaces lookups, so key "api_key" with prefix "ercx"
// resolves `pass show ercx/api_key`.
func NewStoreWithPrefix(prefix string) *Store {
	return &Store{run: runPassCommand, prefix: prefix}
}

// Get runs `pass show <key>` and returns the first line of output.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	stdout, stderr, err := s.run(ctx, "show", key)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return "", ErrUnavailable
		}
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("%w: %s", domain.ErrSecretNotFound, key)
		}
		return "", fmt.Errorf("pass get %q: %w: %s", key, err, strings.TrimSpace(stderr))
	}

	value, _, _ := strings.Cut(stdout, "\n")
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrSecretNotFound, key)
	}

	return value, nil
}

func runPassCommand(ctx context.Context, args ...string) (string, string, error) {
	if _, err := exec.LookPath("pass"); err != nil {
		return "", "", ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, "pass", args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
