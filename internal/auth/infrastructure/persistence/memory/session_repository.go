// Package memory 进程内会话存储，单实例部署与测试使用
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wyfcoding/poseidon/internal/auth/domain"
)

// SessionRepository 进程内会话仓储
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

var _ domain.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository 创建进程内会话仓储
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

func (r *SessionRepository) Save(_ context.Context, session *domain.Session) error {
	if session.IsExpired(r.now()) {
		return domain.ErrSessionExpired
	}
	cp := *session
	cp.Flashes = append([]domain.Flash(nil), session.Flashes...)

	r.mu.Lock()
	r.sessions[session.ID] = cp
	r.mu.Unlock()
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if session.IsExpired(r.now()) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, nil
	}
	session.Flashes = append([]domain.Flash(nil), session.Flashes...)
	return &session, nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

// Sweep 清理过期会话，返回清理数量
func (r *SessionRepository) Sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.IsExpired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Len 当前会话数量
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
