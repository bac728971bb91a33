package jsonstore

import (
	"context"
	"sync"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/storage"
)

const categoriesCollection = "categories"

var defaultCategories = map[domain.CategoryKind][]string{
	domain.CategoryVenues: {
		"예술의전당 콘서트홀",
		"롯데콘서트홀",
		"세종문화회관 대극장",
		"금호아트홀 연세",
		"부산문화회관 대극장",
	},
	domain.CategoryInstruments: {
		"바이올린",
		"비올라",
		"첼로",
		"더블베이스",
		"플루트",
		"클라리넷",
		"오보에",
		"호른",
		"트럼펫",
		"피아노",
	},
	domain.CategorySubParts: {
		"악장",
		"1st Violin",
		"2nd Violin",
		"수석",
		"부수석",
		"단원",
	},
}

// CategoryRepo stores the selectable-value lists as one document keyed
// by kind. The first load of an empty document seeds and persists the
// defaults, so a read triggers a write.
type CategoryRepo struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewCategoryRepo(store *storage.Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) List(ctx context.Context, kind domain.CategoryKind) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats, err := r.load()
	if err != nil {
		return nil, err
	}
	values := cats[string(kind)]
	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

// Add inserts value into the kind's list. Returns false if it was
// already present; duplicates are a no-op, not an error.
func (r *CategoryRepo) Add(ctx context.Context, kind domain.CategoryKind, value string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats, err := r.load()
	if err != nil {
		return false, err
	}
	for _, v := range cats[string(kind)] {
		if v == value {
			return false, nil
		}
	}
	cats[string(kind)] = append(cats[string(kind)], value)
	if err := r.store.Save(categoriesCollection, cats); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes value from the kind's list. Returns false if absent.
func (r *CategoryRepo) Remove(ctx context.Context, kind domain.CategoryKind, value string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats, err := r.load()
	if err != nil {
		return false, err
	}
	values := cats[string(kind)]
	for i, v := range values {
		if v == value {
			cats[string(kind)] = append(values[:i:i], values[i+1:]...)
			if err := r.store.Save(categoriesCollection, cats); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryRepo) load() (map[string][]string, error) {
	cats := make(map[string][]string)
	if err := r.store.Load(categoriesCollection, &cats); err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		for kind, values := range defaultCategories {
			cats[string(kind)] = append([]string(nil), values...)
		}
		if err := r.store.Save(categoriesCollection, cats); err != nil {
			return nil, err
		}
	}
	return cats, nil
}
