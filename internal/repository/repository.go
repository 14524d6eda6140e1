package repository

import "context"

// StateRepository is durable key-value storage for client state
// (access token, refresh token, last selected dictionary).
// A missing key is reported as ok == false with a nil error.
type StateRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
