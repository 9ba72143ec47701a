package domain

import (
	"context"
	"time"
)

// FlashKind 闪存消息类型
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash 跨一次重定向展示的消息
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Session 登录会话，只保存用户名，主体在每次请求时重新加载
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Flashes   []Flash   `json:"flashes,omitempty"`
}

// IsExpired 判断会话在给定时刻是否已过期
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NeedsRefresh 剩余时长不足一半时需要续期
func (s *Session) NeedsRefresh(now time.Time, ttl time.Duration) bool {
	return s.ExpiresAt.Sub(now) < ttl/2
}

// SessionRepository 会话仓储接口
type SessionRepository interface {
	// Save 保存会话，过期时间取自 ExpiresAt
	Save(ctx context.Context, session *Session) error
	// Get 获取会话，不存在或已过期时返回 nil, nil
	Get(ctx context.Context, id string) (*Session, error)
	// Delete 删除会话
	Delete(ctx context.Context, id string) error
}
