package domain

import "time"

// Like records a single user's reaction to a performance. At most one
// exists per (performance, user) pair.
type Like struct {
	PerformanceID string    `json:"performance_id"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// LikeKey is the composite document key for a Like.
func LikeKey(performanceID, userID string) string {
	return performanceID + "_" + userID
}
