package domain

import "time"

const (
	UserCreatedEventType = "user.created"
	UserUpdatedEventType = "user.updated"
	UserDeletedEventType = "user.deleted"
)

// UserCreatedEvent 用户创建事件
type UserCreatedEvent struct {
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Actor      string    `json:"actor"`
	OccurredOn time.Time `json:"occurred_on"`
}

// UserUpdatedEvent 用户更新事件
type UserUpdatedEvent struct {
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username"`
	Role            string    `json:"role"`
	PasswordChanged bool      `json:"password_changed"`
	Actor           string    `json:"actor"`
	OccurredOn      time.Time `json:"occurred_on"`
}

// UserDeletedEvent 用户删除事件
type UserDeletedEvent struct {
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Actor      string    `json:"actor"`
	OccurredOn time.Time `json:"occurred_on"`
}
