// Package settings stores small durable key-value pairs that must survive
// process restarts: the token pair, the UI theme and the UI language.
package settings

import "context"

// Repository is a durable string key-value store. Get returns "" without an
// error when the key is absent; absence and an empty value are not
// distinguished.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
