package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "state")

	repo, err := NewStateRepo(dir)
	require.NoError(t, err)

	_, ok, err := repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "accessToken", "tok"))

	info, err := os.Stat(filepath.Join(dir, "accessToken"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	value, ok, err := repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", value)

	require.NoError(t, repo.Delete(ctx, "accessToken"))
	_, ok, err = repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateRepo_DeleteMissing(t *testing.T) {
	repo, err := NewStateRepo(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(context.Background(), "refreshToken"))
}

func TestStateRepo_InvalidKey(t *testing.T) {
	repo, err := NewStateRepo(t.TempDir())
	require.NoError(t, err)

	tests := []string{"", ".", "..", "../escape", `a\b`}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, repo.Set(context.Background(), key, "x"))
		})
	}
}
