package service

import (
	"context"
	"errors"
	"strings"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/repository"
)

var (
	ErrUnknownCategory    = errors.New("unknown category kind")
	ErrEmptyCategoryValue = errors.New("category value is empty")
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List(ctx context.Context, kind string) ([]string, error) {
	k, ok := domain.ParseCategoryKind(kind)
	if !ok {
		return nil, ErrUnknownCategory
	}
	values, err := s.categoryRepo.List(ctx, k)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func (s *CategoryService) Add(ctx context.Context, kind, value string) (bool, error) {
	k, ok := domain.ParseCategoryKind(kind)
	if !ok {
		return false, ErrUnknownCategory
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false, ErrEmptyCategoryValue
	}
	return s.categoryRepo.Add(ctx, k, value)
}

func (s *CategoryService) Remove(ctx context.Context, kind, value string) (bool, error) {
	k, ok := domain.ParseCategoryKind(kind)
	if !ok {
		return false, ErrUnknownCategory
	}
	return s.categoryRepo.Remove(ctx, k, value)
}
