package domain

import "time"

const (
	RatingCreatedEventType = "rating.created"
	RatingUpdatedEventType = "rating.updated"
	RatingDeletedEventType = "rating.deleted"
)

// RatingChangedEvent 评级变更事件
type RatingChangedEvent struct {
	RatingID     uint      `json:"rating_id"`
	MoodysRating string    `json:"moodys_rating,omitempty"`
	SandPRating  string    `json:"sandp_rating,omitempty"`
	FitchRating  string    `json:"fitch_rating,omitempty"`
	OrderNumber  *int      `json:"order_number,omitempty"`
	Actor        string    `json:"actor"`
	OccurredOn   time.Time `json:"occurred_on"`
}
