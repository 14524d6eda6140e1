package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect opens a client and checks that the server answers
func Connect(addr, password string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// StateRepo implements repository.StateRepository on top of Redis keys.
// Values never expire.
type StateRepo struct {
	client    goredis.Cmdable
	namespace string
}

// NewStateRepo creates a Redis-backed state repository for the given namespace
func NewStateRepo(client goredis.Cmdable, namespace string) *StateRepo {
	return &StateRepo{client: client, namespace: namespace}
}

func (r *StateRepo) key(key string) string {
	return "state:" + r.namespace + ":" + key
}

// Get returns the stored value for key
func (r *StateRepo) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return val, true, nil
}

// Set stores value under key
func (r *StateRepo) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *StateRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}
