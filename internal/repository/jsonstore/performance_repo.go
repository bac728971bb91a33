package jsonstore

import (
	"context"
	"sort"
	"sync"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/storage"
)

const performancesCollection = "performances"

type PerformanceRepo struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewPerformanceRepo(store *storage.Store) *PerformanceRepo {
	return &PerformanceRepo{store: store}
}

func (r *PerformanceRepo) Create(ctx context.Context, perf *domain.Performance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	perfs, err := r.load()
	if err != nil {
		return err
	}
	perfs[perf.ID] = *perf
	return r.store.Save(performancesCollection, perfs)
}

func (r *PerformanceRepo) GetByID(ctx context.Context, id string) (*domain.Performance, error) {
	perfs, err := r.load()
	if err != nil {
		return nil, err
	}
	if p, ok := perfs[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *PerformanceRepo) ListByOwner(ctx context.Context, username string) ([]domain.Performance, error) {
	perfs, err := r.load()
	if err != nil {
		return nil, err
	}
	var out []domain.Performance
	for _, p := range perfs {
		if p.UserID == username {
			out = append(out, p)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *PerformanceRepo) ListPublic(ctx context.Context) ([]domain.Performance, error) {
	perfs, err := r.load()
	if err != nil {
		return nil, err
	}
	var out []domain.Performance
	for _, p := range perfs {
		if p.IsPublic {
			out = append(out, p)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *PerformanceRepo) Update(ctx context.Context, perf *domain.Performance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	perfs, err := r.load()
	if err != nil {
		return err
	}
	perfs[perf.ID] = *perf
	return r.store.Save(performancesCollection, perfs)
}

func (r *PerformanceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	perfs, err := r.load()
	if err != nil {
		return err
	}
	delete(perfs, id)
	return r.store.Save(performancesCollection, perfs)
}

func (r *PerformanceRepo) load() (map[string]domain.Performance, error) {
	perfs := make(map[string]domain.Performance)
	if err := r.store.Load(performancesCollection, &perfs); err != nil {
		return nil, err
	}
	return perfs, nil
}

// sortByDateDesc orders newest performance date first. Ties fall back to
// creation time descending, then ID, so listings are deterministic.
func sortByDateDesc(perfs []domain.Performance) {
	sort.Slice(perfs, func(i, j int) bool {
		if perfs[i].Date != perfs[j].Date {
			return perfs[i].Date > perfs[j].Date
		}
		if !perfs[i].CreatedAt.Equal(perfs[j].CreatedAt) {
			return perfs[i].CreatedAt.After(perfs[j].CreatedAt)
		}
		return perfs[i].ID < perfs[j].ID
	})
}
