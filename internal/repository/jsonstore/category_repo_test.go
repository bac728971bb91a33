package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepoSeedsDefaultsOnFirstRead(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(dir)
	require.NoError(t, err)
	repo := NewCategoryRepo(store)

	values, err := repo.List(context.Background(), domain.CategoryInstruments)
	require.NoError(t, err)
	assert.Contains(t, values, "바이올린")

	// Seed-on-first-read: the read persisted the defaults.
	_, err = os.Stat(filepath.Join(dir, "categories.json"))
	assert.NoError(t, err)
}

func TestCategoryRepoAddDuplicateIsNoOp(t *testing.T) {
	repo := NewCategoryRepo(newTestStore(t))
	ctx := context.Background()

	added, err := repo.Add(ctx, domain.CategoryVenues, "통영국제음악당")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(ctx, domain.CategoryVenues, "통영국제음악당")
	require.NoError(t, err)
	assert.False(t, added)

	values, err := repo.List(ctx, domain.CategoryVenues)
	require.NoError(t, err)

	count := 0
	for _, v := range values {
		if v == "통영국제음악당" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCategoryRepoRemove(t *testing.T) {
	repo := NewCategoryRepo(newTestStore(t))
	ctx := context.Background()

	removed, err := repo.Remove(ctx, domain.CategoryInstruments, "바이올린")
	require.NoError(t, err)
	assert.True(t, removed)

	values, err := repo.List(ctx, domain.CategoryInstruments)
	require.NoError(t, err)
	assert.NotContains(t, values, "바이올린")

	removed, err = repo.Remove(ctx, domain.CategoryInstruments, "바이올린")
	require.NoError(t, err)
	assert.False(t, removed)
}
