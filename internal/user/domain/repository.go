package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	FindAll(ctx context.Context) ([]*User, error)
	// FindByID 不存在时返回 nil, nil
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByUsername 不存在时返回 nil, nil
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, id uint) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
