package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/repository"
)

var (
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrNotOwner            = errors.New("only the performance owner can perform this action")
	ErrEmptyPieces         = errors.New("performance needs at least one program piece")
)

type PerformanceService struct {
	performanceRepo repository.PerformanceRepository
	commentRepo     repository.CommentRepository
	likeRepo        repository.LikeRepository
	notifier        Notifier
}

func NewPerformanceService(
	performanceRepo repository.PerformanceRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
) *PerformanceService {
	return &PerformanceService{
		performanceRepo: performanceRepo,
		commentRepo:     commentRepo,
		likeRepo:        likeRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *PerformanceService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreatePerformanceInput struct {
	Date         string   `json:"date"`
	Venue        string   `json:"venue"`
	Pieces       []string `json:"pieces"`
	Instrument   string   `json:"instrument"`
	SubPart      string   `json:"sub_part"`
	IsGuest      bool     `json:"is_guest"`
	GuestFee     *int     `json:"guest_fee,omitempty"`
	Conductor    string   `json:"conductor"`
	EnsembleName string   `json:"ensemble_name"`
	IsPublic     bool     `json:"is_public"`
	YoutubeURL   string   `json:"youtube_url,omitempty"`
	PosterURL    string   `json:"poster_url,omitempty"`
}

// UpdatePerformanceInput carries a partial update; nil fields keep the
// stored value.
type UpdatePerformanceInput struct {
	Date         *string   `json:"date,omitempty"`
	Venue        *string   `json:"venue,omitempty"`
	Pieces       *[]string `json:"pieces,omitempty"`
	Instrument   *string   `json:"instrument,omitempty"`
	SubPart      *string   `json:"sub_part,omitempty"`
	IsGuest      *bool     `json:"is_guest,omitempty"`
	GuestFee     *int      `json:"guest_fee,omitempty"`
	Conductor    *string   `json:"conductor,omitempty"`
	EnsembleName *string   `json:"ensemble_name,omitempty"`
	IsPublic     *bool     `json:"is_public,omitempty"`
	YoutubeURL   *string   `json:"youtube_url,omitempty"`
	PosterURL    *string   `json:"poster_url,omitempty"`
}

func (s *PerformanceService) Create(ctx context.Context, owner string, input CreatePerformanceInput) (*domain.Performance, error) {
	if len(input.Pieces) == 0 {
		return nil, ErrEmptyPieces
	}

	var fee *int
	if input.IsGuest {
		fee = input.GuestFee
	}

	perf := &domain.Performance{
		ID:           "perf_" + uuid.NewString(),
		UserID:       owner,
		Date:         input.Date,
		Venue:        input.Venue,
		Pieces:       input.Pieces,
		Instrument:   input.Instrument,
		SubPart:      input.SubPart,
		IsGuest:      input.IsGuest,
		GuestFee:     fee,
		Conductor:    input.Conductor,
		EnsembleName: input.EnsembleName,
		IsPublic:     input.IsPublic,
		YoutubeURL:   input.YoutubeURL,
		PosterURL:    input.PosterURL,
		CreatedAt:    time.Now(),
	}

	if err := s.performanceRepo.Create(ctx, perf); err != nil {
		return nil, fmt.Errorf("creating performance: %w", err)
	}

	if s.notifier != nil && perf.IsPublic {
		s.notifier.NotifyPerformancePublished(perf)
	}

	return perf, nil
}

func (s *PerformanceService) ListMine(ctx context.Context, owner string) ([]domain.Performance, error) {
	perfs, err := s.performanceRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if perfs == nil {
		perfs = []domain.Performance{}
	}
	return perfs, nil
}

func (s *PerformanceService) ListPublic(ctx context.Context) ([]domain.Performance, error) {
	perfs, err := s.performanceRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	if perfs == nil {
		perfs = []domain.Performance{}
	}
	return perfs, nil
}

func (s *PerformanceService) Update(ctx context.Context, owner, performanceID string, input UpdatePerformanceInput) (*domain.Performance, error) {
	perf, err := s.performanceRepo.GetByID(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	if perf == nil {
		return nil, ErrPerformanceNotFound
	}
	if perf.UserID != owner {
		return nil, ErrNotOwner
	}

	if input.Date != nil {
		perf.Date = *input.Date
	}
	if input.Venue != nil {
		perf.Venue = *input.Venue
	}
	if input.Pieces != nil {
		if len(*input.Pieces) == 0 {
			return nil, ErrEmptyPieces
		}
		perf.Pieces = *input.Pieces
	}
	if input.Instrument != nil {
		perf.Instrument = *input.Instrument
	}
	if input.SubPart != nil {
		perf.SubPart = *input.SubPart
	}
	if input.IsGuest != nil {
		perf.IsGuest = *input.IsGuest
		if !perf.IsGuest {
			perf.GuestFee = nil
		}
	}
	if input.GuestFee != nil && perf.IsGuest {
		perf.GuestFee = input.GuestFee
	}
	if input.Conductor != nil {
		perf.Conductor = *input.Conductor
	}
	if input.EnsembleName != nil {
		perf.EnsembleName = *input.EnsembleName
	}
	if input.IsPublic != nil {
		perf.IsPublic = *input.IsPublic
	}
	if input.YoutubeURL != nil {
		perf.YoutubeURL = *input.YoutubeURL
	}
	if input.PosterURL != nil {
		perf.PosterURL = *input.PosterURL
	}

	now := time.Now()
	perf.UpdatedAt = &now

	if err := s.performanceRepo.Update(ctx, perf); err != nil {
		return nil, fmt.Errorf("updating performance: %w", err)
	}

	if s.notifier != nil {
		if perf.IsPublic {
			s.notifier.NotifyPerformanceUpdated(perf)
		} else {
			s.notifier.NotifyPerformanceDeleted(perf.ID)
		}
	}

	return perf, nil
}

// Delete removes the performance and cascades into its comments and
// likes. The three collection writes happen sequentially; a failure
// partway leaves later collections untouched (best-effort cascade).
func (s *PerformanceService) Delete(ctx context.Context, owner, performanceID string) error {
	perf, err := s.performanceRepo.GetByID(ctx, performanceID)
	if err != nil {
		return err
	}
	if perf == nil {
		return ErrPerformanceNotFound
	}
	if perf.UserID != owner {
		return ErrNotOwner
	}

	if err := s.performanceRepo.Delete(ctx, performanceID); err != nil {
		return fmt.Errorf("deleting performance: %w", err)
	}
	if err := s.commentRepo.DeleteByPerformance(ctx, performanceID); err != nil {
		return fmt.Errorf("deleting performance comments: %w", err)
	}
	if err := s.likeRepo.DeleteByPerformance(ctx, performanceID); err != nil {
		return fmt.Errorf("deleting performance likes: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyPerformanceDeleted(performanceID)
	}

	return nil
}
