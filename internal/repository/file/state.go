package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StateRepo implements repository.StateRepository with one file per key
// inside dir. Files are created with 0600 permissions.
type StateRepo struct {
	dir string
}

// NewStateRepo creates the state directory if needed
func NewStateRepo(dir string) (*StateRepo, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &StateRepo{dir: dir}, nil
}

func (r *StateRepo) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid state key %q", key)
	}
	return filepath.Join(r.dir, key), nil
}

// Get returns the stored value for key
func (r *StateRepo) Get(_ context.Context, key string) (string, bool, error) {
	p, err := r.path(key)
	if err != nil {
		return "", false, err
	}

	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return strings.TrimSpace(string(b)), true, nil
}

// Set stores value under key
func (r *StateRepo) Set(_ context.Context, key, value string) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, []byte(value), 0o600); err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (r *StateRepo) Delete(_ context.Context, key string) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}
