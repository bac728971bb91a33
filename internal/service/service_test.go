package service

import (
	"testing"

	"github.com/opusarchive/opus/internal/repository/jsonstore"
	"github.com/opusarchive/opus/internal/storage"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	users        *jsonstore.UserRepo
	performances *jsonstore.PerformanceRepo
	comments     *jsonstore.CommentRepo
	likes        *jsonstore.LikeRepo
	categories   *jsonstore.CategoryRepo
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return &testRepos{
		users:        jsonstore.NewUserRepo(store),
		performances: jsonstore.NewPerformanceRepo(store),
		comments:     jsonstore.NewCommentRepo(store),
		likes:        jsonstore.NewLikeRepo(store),
		categories:   jsonstore.NewCategoryRepo(store),
	}
}
