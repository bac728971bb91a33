package jsonstore

import (
	"context"
	"sync"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/storage"
)

const usersCollection = "users"

// UserRepo stores users keyed by username.
type UserRepo struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewUserRepo(store *storage.Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	users[user.Username] = *user
	return r.store.Save(usersCollection, users)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	if u, ok := users[username]; ok {
		return &u, nil
	}
	return nil, nil
}

// GetByEmail is a full scan; emails are compared case-sensitively.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) load() (map[string]domain.User, error) {
	users := make(map[string]domain.User)
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}
