package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/poseidon/internal/curvepoint/domain"
	"github.com/wyfcoding/poseidon/pkg/db"
	"gorm.io/gorm"
)

// CurvePointModel curvepoint 表映射
type CurvePointModel struct {
	ID           uint                `gorm:"column:id;primaryKey;autoIncrement"`
	CurveID      int                 `gorm:"column:curve_id"`
	AsOfDate     *time.Time          `gorm:"column:as_of_date"`
	Term         decimal.NullDecimal `gorm:"column:term;type:decimal(20,8)"`
	Value        decimal.NullDecimal `gorm:"column:value;type:decimal(20,8)"`
	CreationDate *time.Time          `gorm:"column:creation_date"`
}

func (CurvePointModel) TableName() string {
	return "curvepoint"
}

type curvePointRepository struct {
	db *gorm.DB
	tx *db.Transactor
}

// NewCurvePointRepository 创建曲线点仓储
func NewCurvePointRepository(gdb *gorm.DB) domain.CurvePointRepository {
	return &curvePointRepository{db: gdb, tx: db.NewTransactor(gdb)}
}

func (r *curvePointRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTx(ctx, fn)
}

func (r *curvePointRepository) FindAll(ctx context.Context) ([]*domain.CurvePoint, error) {
	var models []CurvePointModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.CurvePoint, 0, len(models))
	for i := range models {
		out = append(out, toCurvePoint(&models[i]))
	}
	return out, nil
}

func (r *curvePointRepository) FindByID(ctx context.Context, id uint) (*domain.CurvePoint, error) {
	var model CurvePointModel
	err := db.Conn(ctx, r.db).First(&model, id).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCurvePoint(&model), nil
}

func (r *curvePointRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&CurvePointModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *curvePointRepository) Save(ctx context.Context, point *domain.CurvePoint) error {
	model := &CurvePointModel{
		ID:           point.ID,
		CurveID:      point.CurveID,
		AsOfDate:     point.AsOfDate,
		Term:         point.Term,
		Value:        point.Value,
		CreationDate: point.CreationDate,
	}
	if err := db.Conn(ctx, r.db).Save(model).Error; err != nil {
		return err
	}
	point.ID = model.ID
	return nil
}

func (r *curvePointRepository) DeleteByID(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Delete(&CurvePointModel{}, id).Error
}

func toCurvePoint(m *CurvePointModel) *domain.CurvePoint {
	return &domain.CurvePoint{
		ID:           m.ID,
		CurveID:      m.CurveID,
		AsOfDate:     m.AsOfDate,
		Term:         m.Term,
		Value:        m.Value,
		CreationDate: m.CreationDate,
	}
}
