package mysql

import (
	"context"

	"github.com/wyfcoding/poseidon/internal/user/domain"
	"github.com/wyfcoding/poseidon/pkg/db"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	tx *db.Transactor
}

// NewUserRepository 创建用户仓储
func NewUserRepository(gdb *gorm.DB) domain.UserRepository {
	return &userRepository{db: gdb, tx: db.NewTransactor(gdb)}
}

func (r *userRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTx(ctx, fn)
}

func (r *userRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	var models []UserModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(models))
	for i := range models {
		users = append(users, toUser(&models[i]))
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var model UserModel
	err := db.Conn(ctx, r.db).First(&model, id).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(&model), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var model UserModel
	err := db.Conn(ctx, r.db).Where("username = ?", username).First(&model).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(&model), nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&UserModel{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	model := toUserModel(user)
	if err := db.Conn(ctx, r.db).Save(model).Error; err != nil {
		return err
	}
	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Delete(&UserModel{}, id).Error
}
