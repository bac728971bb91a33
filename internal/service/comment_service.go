package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/repository"
)

var (
	ErrEmptyContent     = errors.New("comment content is empty")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("only the comment author can perform this action")
)

type CommentService struct {
	commentRepo repository.CommentRepository
	notifier    Notifier
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *CommentService) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *CommentService) Add(ctx context.Context, author, performanceID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	comment := &domain.Comment{
		ID:            "comment_" + uuid.NewString(),
		PerformanceID: performanceID,
		UserID:        author,
		Content:       content,
		CreatedAt:     time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewComment(comment)
	}

	return comment, nil
}

func (s *CommentService) ListFor(ctx context.Context, performanceID string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListByPerformance(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

func (s *CommentService) Delete(ctx context.Context, requester, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != requester {
		return ErrNotCommentAuthor
	}

	return s.commentRepo.Delete(ctx, commentID)
}
