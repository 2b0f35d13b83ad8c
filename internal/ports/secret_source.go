package ports

import "context"

// SecretSource resolves a named credential. Sources report
// domain.ErrSecretNotFound when the key does not exist so a chain can move on
// to the next source.
type SecretSource interface {
	Get(ctx context.Context, key string) (string, error)
}
