package application

import (
	"context"
	"fmt"
	"time"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/user/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// CreateUserCommand 创建用户命令，Password 为明文
type CreateUserCommand struct {
	Username string
	Password string
	Fullname string
	Role     authdomain.Role
}

// UpdateUserCommand 更新用户命令，Password 为空表示保留原密码
type UpdateUserCommand struct {
	Password string
	Fullname string
	Role     authdomain.Role
}

// UserService 用户管理应用服务
type UserService struct {
	repo      domain.UserRepository
	hasher    authdomain.PasswordHasher
	publisher mq.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewUserService 创建用户管理应用服务
func NewUserService(repo domain.UserRepository, hasher authdomain.PasswordHasher, publisher mq.Publisher, m *metrics.Metrics) *UserService {
	return &UserService{repo: repo, hasher: hasher, publisher: publisher, metrics: m, now: time.Now}
}

// List 返回全部用户
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Get 按 id 获取用户
func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
	}
	return user, nil
}

// CheckIfIDExists 判断用户是否存在
func (s *UserService) CheckIfIDExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Create 校验用户名与密码强度，用户名唯一，密码哈希后保存
func (s *UserService) Create(ctx context.Context, actor *authdomain.Principal, cmd CreateUserCommand) (*domain.User, error) {
	if !domain.ValidUsername(cmd.Username) {
		return nil, domain.ErrInvalidUsername
	}
	if !domain.ValidPassword(cmd.Password) {
		return nil, domain.ErrWeakPassword
	}
	if !cmd.Role.IsValid() {
		return nil, fmt.Errorf("%w: %q", authdomain.ErrUnknownRole, cmd.Role)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.NewUser(cmd.Username, hash, cmd.Fullname, cmd.Role)

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsByUsername(txCtx, cmd.Username)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrUsernameTaken
		}
		return s.repo.Save(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMutation("user", "create")
	logger.Info(ctx, "user created", "id", user.ID, "username", user.Username, "role", user.Role, "actor", actor.Actor())
	s.publish(ctx, domain.UserCreatedEventType, user.Username, domain.UserCreatedEvent{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role.String(),
		Actor:      actor.Actor(),
		OccurredOn: s.now(),
	})
	return user, nil
}

// Update 更新全名与角色，密码非空时重新哈希。不允许修改当前登录账号
func (s *UserService) Update(ctx context.Context, actor *authdomain.Principal, id uint, cmd UpdateUserCommand) (*domain.User, error) {
	if actor.Is(id) {
		return nil, domain.ErrSelfAction
	}
	if !cmd.Role.IsValid() {
		return nil, fmt.Errorf("%w: %q", authdomain.ErrUnknownRole, cmd.Role)
	}
	changePassword := cmd.Password != ""
	var hash string
	if changePassword {
		if !domain.ValidPassword(cmd.Password) {
			return nil, domain.ErrWeakPassword
		}
		h, err := s.hasher.Hash(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	var user *domain.User
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		existing.Fullname = cmd.Fullname
		existing.Role = cmd.Role
		if changePassword {
			existing.PasswordHash = hash
		}
		user = existing
		return s.repo.Save(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMutation("user", "update")
	logger.Info(ctx, "user updated", "id", user.ID, "username", user.Username, "password_changed", changePassword, "actor", actor.Actor())
	s.publish(ctx, domain.UserUpdatedEventType, user.Username, domain.UserUpdatedEvent{
		UserID:          user.ID,
		Username:        user.Username,
		Role:            user.Role.String(),
		PasswordChanged: changePassword,
		Actor:           actor.Actor(),
		OccurredOn:      s.now(),
	})
	return user, nil
}

// Delete 删除用户。不允许删除当前登录账号
func (s *UserService) Delete(ctx context.Context, actor *authdomain.Principal, id uint) error {
	if actor.Is(id) {
		return domain.ErrSelfAction
	}
	var user *domain.User
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		user = existing
		return s.repo.DeleteByID(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.metrics.RecordMutation("user", "delete")
	logger.Info(ctx, "user deleted", "id", id, "username", user.Username, "actor", actor.Actor())
	s.publish(ctx, domain.UserDeletedEventType, user.Username, domain.UserDeletedEvent{
		UserID:     user.ID,
		Username:   user.Username,
		Actor:      actor.Actor(),
		OccurredOn: s.now(),
	})
	return nil
}

// EnsureAdmin 用户名不存在时创建管理员，用于空库初始化。未配置用户名或密码时跳过。返回是否新建
func (s *UserService) EnsureAdmin(ctx context.Context, username, password, fullname string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if fullname == "" {
		fullname = username
	}
	if _, err := s.Create(ctx, nil, CreateUserCommand{
		Username: username,
		Password: password,
		Fullname: fullname,
		Role:     authdomain.RoleAdmin,
	}); err != nil {
		return false, fmt.Errorf("bootstrap admin %q: %w", username, err)
	}
	return true, nil
}

func (s *UserService) publish(ctx context.Context, topic, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "failed to publish user event", "topic", topic, "error", err)
	}
}
