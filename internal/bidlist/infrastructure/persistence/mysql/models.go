package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/poseidon/internal/bidlist/domain"
)

// BidListModel bidlist 表映射
type BidListModel struct {
	ID           uint                `gorm:"column:id;primaryKey;autoIncrement"`
	Account      string              `gorm:"column:account;type:varchar(30);not null"`
	Type         string              `gorm:"column:type;type:varchar(30);not null"`
	BidQuantity  decimal.NullDecimal `gorm:"column:bid_quantity;type:decimal(20,8)"`
	AskQuantity  decimal.NullDecimal `gorm:"column:ask_quantity;type:decimal(20,8)"`
	Bid          decimal.NullDecimal `gorm:"column:bid;type:decimal(20,8)"`
	Ask          decimal.NullDecimal `gorm:"column:ask;type:decimal(20,8)"`
	Benchmark    string              `gorm:"column:benchmark;type:varchar(125)"`
	BidListDate  *time.Time          `gorm:"column:bid_list_date"`
	Commentary   string              `gorm:"column:commentary;type:varchar(125)"`
	Security     string              `gorm:"column:security;type:varchar(125)"`
	Status       string              `gorm:"column:status;type:varchar(10)"`
	Trader       string              `gorm:"column:trader;type:varchar(125)"`
	Book         string              `gorm:"column:book;type:varchar(125)"`
	CreationName string              `gorm:"column:creation_name;type:varchar(125)"`
	CreationDate *time.Time          `gorm:"column:creation_date"`
	RevisionName string              `gorm:"column:revision_name;type:varchar(125)"`
	RevisionDate *time.Time          `gorm:"column:revision_date"`
	DealName     string              `gorm:"column:deal_name;type:varchar(125)"`
	DealType     string              `gorm:"column:deal_type;type:varchar(125)"`
	SourceListID string              `gorm:"column:source_list_id;type:varchar(125)"`
	Side         string              `gorm:"column:side;type:varchar(125)"`
}

func (BidListModel) TableName() string {
	return "bidlist"
}

func toBidListModel(b *domain.BidList) *BidListModel {
	return &BidListModel{
		ID:           b.ID,
		Account:      b.Account,
		Type:         b.Type,
		BidQuantity:  b.BidQuantity,
		AskQuantity:  b.AskQuantity,
		Bid:          b.Bid,
		Ask:          b.Ask,
		Benchmark:    b.Benchmark,
		BidListDate:  b.BidListDate,
		Commentary:   b.Commentary,
		Security:     b.Security,
		Status:       b.Status,
		Trader:       b.Trader,
		Book:         b.Book,
		CreationName: b.CreationName,
		CreationDate: b.CreationDate,
		RevisionName: b.RevisionName,
		RevisionDate: b.RevisionDate,
		DealName:     b.DealName,
		DealType:     b.DealType,
		SourceListID: b.SourceListID,
		Side:         b.Side,
	}
}

func toBidList(m *BidListModel) *domain.BidList {
	return &domain.BidList{
		ID:           m.ID,
		Account:      m.Account,
		Type:         m.Type,
		BidQuantity:  m.BidQuantity,
		AskQuantity:  m.AskQuantity,
		Bid:          m.Bid,
		Ask:          m.Ask,
		Benchmark:    m.Benchmark,
		BidListDate:  m.BidListDate,
		Commentary:   m.Commentary,
		Security:     m.Security,
		Status:       m.Status,
		Trader:       m.Trader,
		Book:         m.Book,
		CreationName: m.CreationName,
		CreationDate: m.CreationDate,
		RevisionName: m.RevisionName,
		RevisionDate: m.RevisionDate,
		DealName:     m.DealName,
		DealType:     m.DealType,
		SourceListID: m.SourceListID,
		Side:         m.Side,
	}
}
