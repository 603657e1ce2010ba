package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/getawaygame/getaway/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	snapshot := &models.SaveSnapshot{X: 10, Y: 20, Health: 80, Money: 500}
	require.NoError(t, repo.Save(ctx, snapshot))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestFileRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.SaveSnapshot{X: 1, Y: 2, Health: 50, Money: 10}))
	require.NoError(t, repo.Save(ctx, &models.SaveSnapshot{X: 3, Y: 4, Health: 90, Money: 999}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.SaveSnapshot{X: 3, Y: 4, Health: 90, Money: 999}, loaded)
}

func TestFileRepository_LoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	repo := NewFileRepository(path)

	loaded, err := repo.Load(context.Background())
	assert.Nil(t, loaded)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsMalformed(err))
}

func TestFileRepository_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0644))
	repo := NewFileRepository(path)

	loaded, err := repo.Load(context.Background())
	assert.Nil(t, loaded)
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
	assert.False(t, IsNotFound(err))
}
