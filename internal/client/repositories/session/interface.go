package session

import "context"

// Repository stores string values by key.
type Repository interface {
	// Get returns "" and no error when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Replace drops every stored key and writes values, atomically.
	Replace(ctx context.Context, values map[string]string) error
	Clear(ctx context.Context) error
}
