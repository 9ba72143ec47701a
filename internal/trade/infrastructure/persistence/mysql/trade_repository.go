package mysql

import (
	"context"

	"github.com/wyfcoding/poseidon/internal/trade/domain"
	"github.com/wyfcoding/poseidon/pkg/db"
	"gorm.io/gorm"
)

type tradeRepository struct {
	db *gorm.DB
	tx *db.Transactor
}

// NewTradeRepository 创建成交仓储
func NewTradeRepository(gdb *gorm.DB) domain.TradeRepository {
	return &tradeRepository{db: gdb, tx: db.NewTransactor(gdb)}
}

func (r *tradeRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTx(ctx, fn)
}

func (r *tradeRepository) FindAll(ctx context.Context) ([]*domain.Trade, error) {
	var models []TradeModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Trade, 0, len(models))
	for i := range models {
		out = append(out, toTrade(&models[i]))
	}
	return out, nil
}

func (r *tradeRepository) FindByID(ctx context.Context, id uint) (*domain.Trade, error) {
	var model TradeModel
	err := db.Conn(ctx, r.db).First(&model, id).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toTrade(&model), nil
}

func (r *tradeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&TradeModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *tradeRepository) Save(ctx context.Context, trade *domain.Trade) error {
	model := toTradeModel(trade)
	if err := db.Conn(ctx, r.db).Save(model).Error; err != nil {
		return err
	}
	trade.ID = model.ID
	return nil
}

func (r *tradeRepository) DeleteByID(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Delete(&TradeModel{}, id).Error
}
