package ws

import (
	"encoding/json"
	"time"

	"github.com/opusarchive/opus/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypePerformancePublished = "performance.published"
	EventTypePerformanceUpdated   = "performance.updated"
	EventTypePerformanceDeleted   = "performance.deleted"
	EventTypeCommentNew           = "comment.new"
	EventTypeLikeUpdated          = "like.updated"
	EventTypePong                 = "pong"
	EventTypeError                = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type          string          `json:"type"`
	PerformanceID string          `json:"performance_id,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Timestamp     int64           `json:"ts,omitempty"`
}

// --- Server → Client payloads ---

type PerformancePayload struct {
	domain.Performance
}

type PerformanceDeletedPayload struct {
	ID string `json:"id"`
}

type CommentPayload struct {
	domain.Comment
}

type LikeCountPayload struct {
	PerformanceID string `json:"performance_id"`
	Count         int    `json:"count"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType, performanceID string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:          eventType,
		PerformanceID: performanceID,
		Payload:       data,
		Timestamp:     time.Now().Unix(),
	}, nil
}
