// Package domain 报价单领域模型
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound 报价单不存在
var ErrNotFound = errors.New("bid list not found")

// BidList 账户上的一条买卖报价
type BidList struct {
	ID           uint
	Account      string
	Type         string
	BidQuantity  decimal.NullDecimal
	AskQuantity  decimal.NullDecimal
	Bid          decimal.NullDecimal
	Ask          decimal.NullDecimal
	Benchmark    string
	BidListDate  *time.Time
	Commentary   string
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

// NewBidList 创建报价单
func NewBidList(account, typ string, bidQuantity decimal.NullDecimal) *BidList {
	return &BidList{Account: account, Type: typ, BidQuantity: bidQuantity}
}

// MarkCreated 记录创建人与创建时间
func (b *BidList) MarkCreated(by string, at time.Time) {
	b.CreationName = by
	b.CreationDate = &at
}

// MarkRevised 记录修改人与修改时间
func (b *BidList) MarkRevised(by string, at time.Time) {
	b.RevisionName = by
	b.RevisionDate = &at
}

// BidListRepository 报价单仓储接口
type BidListRepository interface {
	FindAll(ctx context.Context) ([]*BidList, error)
	// FindByID 不存在时返回 nil, nil
	FindByID(ctx context.Context, id uint) (*BidList, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, bid *BidList) error
	DeleteByID(ctx context.Context, id uint) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	BidListCreatedEventType = "bidlist.created"
	BidListUpdatedEventType = "bidlist.updated"
	BidListDeletedEventType = "bidlist.deleted"
)

// BidListChangedEvent 报价单变更事件
type BidListChangedEvent struct {
	BidListID   uint                `json:"bid_list_id"`
	Account     string              `json:"account"`
	Type        string              `json:"type"`
	BidQuantity decimal.NullDecimal `json:"bid_quantity"`
	Actor       string              `json:"actor"`
	OccurredOn  time.Time           `json:"occurred_on"`
}
