package jsonstore

import (
	"context"
	"sort"
	"sync"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/storage"
)

const commentsCollection = "comments"

type CommentRepo struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewCommentRepo(store *storage.Store) *CommentRepo {
	return &CommentRepo{store: store}
}

func (r *CommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.load()
	if err != nil {
		return err
	}
	comments[comment.ID] = *comment
	return r.store.Save(commentsCollection, comments)
}

func (r *CommentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comments, err := r.load()
	if err != nil {
		return nil, err
	}
	if c, ok := comments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// ListByPerformance returns comments in chronological thread order.
func (r *CommentRepo) ListByPerformance(ctx context.Context, performanceID string) ([]domain.Comment, error) {
	comments, err := r.load()
	if err != nil {
		return nil, err
	}
	var out []domain.Comment
	for _, c := range comments {
		if c.PerformanceID == performanceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.load()
	if err != nil {
		return err
	}
	delete(comments, id)
	return r.store.Save(commentsCollection, comments)
}

func (r *CommentRepo) DeleteByPerformance(ctx context.Context, performanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments, err := r.load()
	if err != nil {
		return err
	}
	for id, c := range comments {
		if c.PerformanceID == performanceID {
			delete(comments, id)
		}
	}
	return r.store.Save(commentsCollection, comments)
}

func (r *CommentRepo) load() (map[string]domain.Comment, error) {
	comments := make(map[string]domain.Comment)
	if err := r.store.Load(commentsCollection, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
