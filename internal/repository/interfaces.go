package repository

import (
	"context"

	"github.com/opusarchive/opus/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PerformanceRepository interface {
	Create(ctx context.Context, perf *domain.Performance) error
	GetByID(ctx context.Context, id string) (*domain.Performance, error)
	ListByOwner(ctx context.Context, username string) ([]domain.Performance, error)
	ListPublic(ctx context.Context) ([]domain.Performance, error)
	Update(ctx context.Context, perf *domain.Performance) error
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPerformance(ctx context.Context, performanceID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByPerformance(ctx context.Context, performanceID string) error
}

type LikeRepository interface {
	Get(ctx context.Context, performanceID, userID string) (*domain.Like, error)
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, performanceID, userID string) error
	CountByPerformance(ctx context.Context, performanceID string) (int, error)
	DeleteByPerformance(ctx context.Context, performanceID string) error
}

type CategoryRepository interface {
	List(ctx context.Context, kind domain.CategoryKind) ([]string, error)
	Add(ctx context.Context, kind domain.CategoryKind, value string) (bool, error)
	Remove(ctx context.Context, kind domain.CategoryKind, value string) (bool, error)
}
