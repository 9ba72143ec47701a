// Package domain 成交领域模型
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound 成交不存在
var ErrNotFound = errors.New("trade not found")

// Trade 一笔成交记录
type Trade struct {
	ID           uint
	Account      string
	Type         string
	BuyQuantity  decimal.Decimal
	SellQuantity decimal.NullDecimal
	BuyPrice     decimal.NullDecimal
	SellPrice    decimal.NullDecimal
	Benchmark    string
	TradeDate    *time.Time
	Security     string
	Status       string
	Trader       string
	Book         string
	CreationName string
	CreationDate *time.Time
	RevisionName string
	RevisionDate *time.Time
	DealName     string
	DealType     string
	SourceListID string
	Side         string
}

// NewTrade 创建成交
func NewTrade(account, typ string, buyQuantity decimal.Decimal) *Trade {
	return &Trade{Account: account, Type: typ, BuyQuantity: buyQuantity}
}

// MarkCreated 记录创建人与创建时间
func (t *Trade) MarkCreated(by string, at time.Time) {
	t.CreationName = by
	t.CreationDate = &at
}

// MarkRevised 记录修改人与修改时间
func (t *Trade) MarkRevised(by string, at time.Time) {
	t.RevisionName = by
	t.RevisionDate = &at
}

// TradeRepository 成交仓储接口
type TradeRepository interface {
	FindAll(ctx context.Context) ([]*Trade, error)
	// FindByID 不存在时返回 nil, nil
	FindByID(ctx context.Context, id uint) (*Trade, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, trade *Trade) error
	DeleteByID(ctx context.Context, id uint) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	TradeCreatedEventType = "trade.created"
	TradeUpdatedEventType = "trade.updated"
	TradeDeletedEventType = "trade.deleted"
)

// TradeChangedEvent 成交变更事件
type TradeChangedEvent struct {
	TradeID     uint            `json:"trade_id"`
	Account     string          `json:"account"`
	Type        string          `json:"type"`
	BuyQuantity decimal.Decimal `json:"buy_quantity"`
	Actor       string          `json:"actor"`
	OccurredOn  time.Time       `json:"occurred_on"`
}
