package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	svc := NewAuthService(newTestRepos(t).users, "test-secret")
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterInput{Username: "jiwon", Email: "jiwon@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)
	assert.Equal(t, "jiwon", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)

	login, err := svc.Login(ctx, LoginInput{Username: "jiwon", Password: "Str0ngPass"})
	require.NoError(t, err)
	assert.Equal(t, "jiwon", login.User.Username)
	assert.NotEmpty(t, login.AccessToken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestRepos(t).users, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "jiwon", Email: "one@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "jiwon", Email: "two@example.com", Password: "Str0ngPass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestRepos(t).users, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "jiwon", Email: "same@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "minho", Email: "same@example.com", Password: "Str0ngPass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	svc := NewAuthService(newTestRepos(t).users, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "jiwon", Email: "jiwon@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	// Unknown user and wrong password report the same condition.
	_, err = svc.Login(ctx, LoginInput{Username: "nobody", Password: "Str0ngPass"})
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, err = svc.Login(ctx, LoginInput{Username: "jiwon", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestPasswordsAreNotStoredVerbatim(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos.users, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "jiwon", Email: "jiwon@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	user, err := repos.users.GetByUsername(ctx, "jiwon")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotContains(t, user.PasswordHash, "Str0ngPass")
}
