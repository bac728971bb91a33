package ws

import (
	"log"

	"github.com/opusarchive/opus/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyPerformancePublished(perf *domain.Performance) {
	evt, err := NewEvent(EventTypePerformancePublished, perf.ID, PerformancePayload{Performance: *perf})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyPerformanceUpdated(perf *domain.Performance) {
	evt, err := NewEvent(EventTypePerformanceUpdated, perf.ID, PerformancePayload{Performance: *perf})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyPerformanceDeleted(performanceID string) {
	evt, err := NewEvent(EventTypePerformanceDeleted, performanceID, PerformanceDeletedPayload{ID: performanceID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyNewComment(comment *domain.Comment) {
	evt, err := NewEvent(EventTypeCommentNew, comment.PerformanceID, CommentPayload{Comment: *comment})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyLikeCount(performanceID string, count int) {
	evt, err := NewEvent(EventTypeLikeUpdated, performanceID, LikeCountPayload{PerformanceID: performanceID, Count: count})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}
