package jsonstore

import (
	"context"
	"testing"
	"time"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	repo := NewUserRepo(newTestStore(t))
	ctx := context.Background()

	user := &domain.User{
		Username:     "jiwon",
		Email:        "jiwon@example.com",
		PasswordHash: "salt:hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByUsername(ctx, "jiwon")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jiwon@example.com", got.Email)
	assert.Equal(t, "salt:hash", got.PasswordHash)
}

func TestUserRepoGetUnknownReturnsNil(t *testing.T) {
	repo := NewUserRepo(newTestStore(t))

	got, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoGetByEmail(t *testing.T) {
	repo := NewUserRepo(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "a", Email: "a@example.com"}))
	require.NoError(t, repo.Create(ctx, &domain.User{Username: "b", Email: "b@example.com"}))

	got, err := repo.GetByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.Username)

	// Email comparison is case-sensitive.
	got, err = repo.GetByEmail(ctx, "B@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}
