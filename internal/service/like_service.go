package service

import (
	"context"
	"fmt"
	"time"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	notifier Notifier
}

func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *LikeService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Toggle flips the user's like on a performance and reports the new
// state plus the resulting like count. Toggling twice restores the
// original state.
func (s *LikeService) Toggle(ctx context.Context, userID, performanceID string) (liked bool, count int, err error) {
	existing, err := s.likeRepo.Get(ctx, performanceID, userID)
	if err != nil {
		return false, 0, err
	}

	if existing != nil {
		if err := s.likeRepo.Delete(ctx, performanceID, userID); err != nil {
			return false, 0, fmt.Errorf("removing like: %w", err)
		}
		liked = false
	} else {
		like := &domain.Like{
			PerformanceID: performanceID,
			UserID:        userID,
			CreatedAt:     time.Now(),
		}
		if err := s.likeRepo.Create(ctx, like); err != nil {
			return false, 0, fmt.Errorf("creating like: %w", err)
		}
		liked = true
	}

	count, err = s.likeRepo.CountByPerformance(ctx, performanceID)
	if err != nil {
		return liked, 0, err
	}

	if s.notifier != nil {
		s.notifier.NotifyLikeCount(performanceID, count)
	}

	return liked, count, nil
}

func (s *LikeService) Count(ctx context.Context, performanceID string) (int, error) {
	return s.likeRepo.CountByPerformance(ctx, performanceID)
}

func (s *LikeService) HasLiked(ctx context.Context, userID, performanceID string) (bool, error) {
	like, err := s.likeRepo.Get(ctx, performanceID, userID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}
