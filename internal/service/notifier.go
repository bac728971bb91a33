package service

import "github.com/opusarchive/opus/internal/domain"

// Notifier broadcasts archive activity to connected clients.
type Notifier interface {
	NotifyPerformancePublished(perf *domain.Performance)
	NotifyPerformanceUpdated(perf *domain.Performance)
	NotifyPerformanceDeleted(performanceID string)
	NotifyNewComment(comment *domain.Comment)
	NotifyLikeCount(performanceID string, count int)
}
