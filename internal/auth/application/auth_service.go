package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wyfcoding/poseidon/internal/auth/domain"
	userdomain "github.com/wyfcoding/poseidon/internal/user/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// AuthService 登录、登出与会话解析
type AuthService struct {
	users     userdomain.UserRepository
	sessions  domain.SessionRepository
	hasher    domain.PasswordHasher
	publisher mq.Publisher
	metrics   *metrics.Metrics
	ttl       time.Duration
	now       func() time.Time
}

// NewAuthService 创建认证服务
func NewAuthService(
	users userdomain.UserRepository,
	sessions domain.SessionRepository,
	hasher domain.PasswordHasher,
	publisher mq.Publisher,
	m *metrics.Metrics,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		publisher: publisher,
		metrics:   m,
		ttl:       ttl,
		now:       time.Now,
	}
}

// LoadPrincipal 按用户名加载主体，角色映射为唯一的授权角色
func (s *AuthService) LoadPrincipal(ctx context.Context, username string) (*domain.Principal, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("load user %q: %w", username, err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}
	return &domain.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
		Role:     domain.AuthorityFor(string(user.Role)),
	}, user.PasswordHash, nil
}

// Login 校验凭证并创建会话
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	principal, hash, err := s.LoadPrincipal(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if principal == nil || !s.hasher.Compare(hash, password) {
		s.metrics.RecordLogin("failure")
		s.publish(ctx, domain.UserLoginFailedEventType, username, domain.UserLoginFailedEvent{
			Username:   username,
			OccurredOn: s.now(),
		})
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Username:  principal.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.metrics.RecordLogin("success")
	s.publish(ctx, domain.UserLoggedInEventType, principal.Username, domain.UserLoggedInEvent{
		Username:   principal.Username,
		Role:       principal.Role,
		OccurredOn: now,
	})
	logger.Info(ctx, "user logged in", "username", principal.Username, "role", principal.Role)
	return session, nil
}

// Resolve 解析会话并重新加载主体。会话不存在、过期或用户已删除时返回 nil
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, *domain.Principal, error) {
	if sessionID == "" {
		return nil, nil, nil
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, nil, nil
	}

	now := s.now()
	if session.IsExpired(now) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, nil, nil
	}

	principal, _, err := s.LoadPrincipal(ctx, session.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if session.NeedsRefresh(now, s.ttl) {
		session.ExpiresAt = now.Add(s.ttl)
		if err := s.sessions.Save(ctx, session); err != nil {
			logger.Warn(ctx, "failed to refresh session", "username", session.Username, "error", err)
		}
	}
	return session, principal, nil
}

// Logout 使会话失效
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if session != nil {
		s.publish(ctx, domain.UserLoggedOutEventType, session.Username, domain.UserLoggedOutEvent{
			Username:   session.Username,
			OccurredOn: s.now(),
		})
	}
	return nil
}

// AddFlash 向会话追加一条闪存消息
func (s *AuthService) AddFlash(ctx context.Context, session *domain.Session, kind domain.FlashKind, message string) error {
	if session == nil {
		return nil
	}
	session.Flashes = append(session.Flashes, domain.Flash{Kind: kind, Message: message})
	return s.sessions.Save(ctx, session)
}

// PopFlashes 取出并清空会话中的闪存消息
func (s *AuthService) PopFlashes(ctx context.Context, session *domain.Session) []domain.Flash {
	if session == nil || len(session.Flashes) == 0 {
		return nil
	}
	flashes := session.Flashes
	session.Flashes = nil
	if err := s.sessions.Save(ctx, session); err != nil {
		logger.Warn(ctx, "failed to clear flashes", "username", session.Username, "error", err)
	}
	return flashes
}

// TTL 会话有效期
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "failed to publish auth event", "topic", topic, "error", err)
	}
}
