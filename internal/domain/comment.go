package domain

import "time"

type Comment struct {
	ID            string    `json:"id"`
	PerformanceID string    `json:"performance_id"`
	UserID        string    `json:"user_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}
