package mysql

import (
	"context"

	"github.com/wyfcoding/poseidon/internal/bidlist/domain"
	"github.com/wyfcoding/poseidon/pkg/db"
	"gorm.io/gorm"
)

type bidListRepository struct {
	db *gorm.DB
	tx *db.Transactor
}

// NewBidListRepository 创建报价单仓储
func NewBidListRepository(gdb *gorm.DB) domain.BidListRepository {
	return &bidListRepository{db: gdb, tx: db.NewTransactor(gdb)}
}

func (r *bidListRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTx(ctx, fn)
}

func (r *bidListRepository) FindAll(ctx context.Context) ([]*domain.BidList, error) {
	var models []BidListModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.BidList, 0, len(models))
	for i := range models {
		out = append(out, toBidList(&models[i]))
	}
	return out, nil
}

func (r *bidListRepository) FindByID(ctx context.Context, id uint) (*domain.BidList, error) {
	var model BidListModel
	err := db.Conn(ctx, r.db).First(&model, id).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toBidList(&model), nil
}

func (r *bidListRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&BidListModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *bidListRepository) Save(ctx context.Context, bid *domain.BidList) error {
	model := toBidListModel(bid)
	if err := db.Conn(ctx, r.db).Save(model).Error; err != nil {
		return err
	}
	bid.ID = model.ID
	return nil
}

func (r *bidListRepository) DeleteByID(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Delete(&BidListModel{}, id).Error
}
