package service

import (
	"context"
	"errors"
	"strings"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/opusarchive/opus/internal/repository"
)

var ErrInvalidScope = errors.New("search scope must be mine or public")

const (
	SearchScopeMine   = "mine"
	SearchScopePublic = "public"
)

// PerformanceFilter holds optional search criteria. Empty text fields
// pass everything; supplied criteria compose with AND.
type PerformanceFilter struct {
	Venue      string
	Conductor  string
	Ensemble   string
	Instrument string
	DateFrom   string
	DateTo     string
}

type SearchService struct {
	performanceRepo repository.PerformanceRepository
}

func NewSearchService(performanceRepo repository.PerformanceRepository) *SearchService {
	return &SearchService{performanceRepo: performanceRepo}
}

func (s *SearchService) Search(ctx context.Context, requester, scope string, filter PerformanceFilter) ([]domain.Performance, error) {
	var (
		perfs []domain.Performance
		err   error
	)
	switch scope {
	case SearchScopeMine:
		perfs, err = s.performanceRepo.ListByOwner(ctx, requester)
	case SearchScopePublic:
		perfs, err = s.performanceRepo.ListPublic(ctx)
	default:
		return nil, ErrInvalidScope
	}
	if err != nil {
		return nil, err
	}

	result := FilterPerformances(perfs, filter)
	if result == nil {
		result = []domain.Performance{}
	}
	return result, nil
}

// FilterPerformances applies the filter to perfs, preserving their
// relative order. Text criteria are case-insensitive substring matches;
// date bounds are inclusive and rely on ISO dates comparing
// lexicographically in chronological order.
func FilterPerformances(perfs []domain.Performance, f PerformanceFilter) []domain.Performance {
	var out []domain.Performance
	for _, p := range perfs {
		if !matchText(p.Venue, f.Venue) {
			continue
		}
		if !matchText(p.Conductor, f.Conductor) {
			continue
		}
		if !matchText(p.EnsembleName, f.Ensemble) {
			continue
		}
		if !matchText(p.Instrument, f.Instrument) {
			continue
		}
		if f.DateFrom != "" && p.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && p.Date > f.DateTo {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchText(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}
