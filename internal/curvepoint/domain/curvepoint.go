// Package domain 曲线点领域模型
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound 曲线点不存在
var ErrNotFound = errors.New("curve point not found")

// CurvePoint 收益率曲线上的一个期限点
type CurvePoint struct {
	ID           uint
	CurveID      int
	AsOfDate     *time.Time
	Term         decimal.NullDecimal
	Value        decimal.NullDecimal
	CreationDate *time.Time
}

// NewCurvePoint 创建曲线点
func NewCurvePoint(curveID int, term, value decimal.NullDecimal) *CurvePoint {
	return &CurvePoint{CurveID: curveID, Term: term, Value: value}
}

// CurvePointRepository 曲线点仓储接口
type CurvePointRepository interface {
	FindAll(ctx context.Context) ([]*CurvePoint, error)
	// FindByID 不存在时返回 nil, nil
	FindByID(ctx context.Context, id uint) (*CurvePoint, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, point *CurvePoint) error
	DeleteByID(ctx context.Context, id uint) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	CurvePointCreatedEventType = "curvepoint.created"
	CurvePointUpdatedEventType = "curvepoint.updated"
	CurvePointDeletedEventType = "curvepoint.deleted"
)

// CurvePointChangedEvent 曲线点变更事件
type CurvePointChangedEvent struct {
	CurvePointID uint                `json:"curve_point_id"`
	CurveID      int                 `json:"curve_id"`
	Term         decimal.NullDecimal `json:"term"`
	Value        decimal.NullDecimal `json:"value"`
	Actor        string              `json:"actor"`
	OccurredOn   time.Time           `json:"occurred_on"`
}
