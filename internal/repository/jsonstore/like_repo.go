package jsonstore

import (
	"context"
	"sync"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/storage"
)

const likesCollection = "likes"

// LikeRepo stores likes keyed by the composite performanceID_userID key.
type LikeRepo struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewLikeRepo(store *storage.Store) *LikeRepo {
	return &LikeRepo{store: store}
}

func (r *LikeRepo) Get(ctx context.Context, performanceID, userID string) (*domain.Like, error) {
	likes, err := r.load()
	if err != nil {
		return nil, err
	}
	if l, ok := likes[domain.LikeKey(performanceID, userID)]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r *LikeRepo) Create(ctx context.Context, like *domain.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	likes, err := r.load()
	if err != nil {
		return err
	}
	likes[domain.LikeKey(like.PerformanceID, like.UserID)] = *like
	return r.store.Save(likesCollection, likes)
}

func (r *LikeRepo) Delete(ctx context.Context, performanceID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	likes, err := r.load()
	if err != nil {
		return err
	}
	delete(likes, domain.LikeKey(performanceID, userID))
	return r.store.Save(likesCollection, likes)
}

func (r *LikeRepo) CountByPerformance(ctx context.Context, performanceID string) (int, error) {
	likes, err := r.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, l := range likes {
		if l.PerformanceID == performanceID {
			count++
		}
	}
	return count, nil
}

func (r *LikeRepo) DeleteByPerformance(ctx context.Context, performanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	likes, err := r.load()
	if err != nil {
		return err
	}
	for key, l := range likes {
		if l.PerformanceID == performanceID {
			delete(likes, key)
		}
	}
	return r.store.Save(likesCollection, likes)
}

func (r *LikeRepo) load() (map[string]domain.Like, error) {
	likes := make(map[string]domain.Like)
	if err := r.store.Load(likesCollection, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}
