package domain

import "time"

const (
	UserLoggedInEventType  = "auth.user.logged_in"
	UserLoginFailedEventType = "auth.user.login_failed"
	UserLoggedOutEventType = "auth.user.logged_out"
)

// UserLoggedInEvent 用户登录事件
type UserLoggedInEvent struct {
	Username   string    `json:"username"`
	Role       Role      `json:"role"`
	OccurredOn time.Time `json:"occurred_on"`
}

// UserLoginFailedEvent 登录失败事件
type UserLoginFailedEvent struct {
	Username   string    `json:"username"`
	OccurredOn time.Time `json:"occurred_on"`
}

// UserLoggedOutEvent 用户登出事件
type UserLoggedOutEvent struct {
	Username   string    `json:"username"`
	OccurredOn time.Time `json:"occurred_on"`
}
