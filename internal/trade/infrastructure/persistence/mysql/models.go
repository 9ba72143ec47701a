package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/poseidon/internal/trade/domain"
)

// TradeModel trade 表映射
type TradeModel struct {
	ID           uint                `gorm:"column:id;primaryKey;autoIncrement"`
	Account      string              `gorm:"column:account;type:varchar(30);not null"`
	Type         string              `gorm:"column:type;type:varchar(30);not null"`
	BuyQuantity  decimal.Decimal     `gorm:"column:buy_quantity;type:decimal(20,8);not null"`
	SellQuantity decimal.NullDecimal `gorm:"column:sell_quantity;type:decimal(20,8)"`
	BuyPrice     decimal.NullDecimal `gorm:"column:buy_price;type:decimal(20,8)"`
	SellPrice    decimal.NullDecimal `gorm:"column:sell_price;type:decimal(20,8)"`
	Benchmark    string              `gorm:"column:benchmark;type:varchar(125)"`
	TradeDate    *time.Time          `gorm:"column:trade_date"`
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

func (TradeModel) TableName() string {
	return "trade"
}

func toTradeModel(t *domain.Trade) *TradeModel {
	return &TradeModel{
		ID:           t.ID,
		Account:      t.Account,
		Type:         t.Type,
		BuyQuantity:  t.BuyQuantity,
		SellQuantity: t.SellQuantity,
		BuyPrice:     t.BuyPrice,
		SellPrice:    t.SellPrice,
		Benchmark:    t.Benchmark,
		TradeDate:    t.TradeDate,
		Security:     t.Security,
		Status:       t.Status,
		Trader:       t.Trader,
		Book:         t.Book,
		CreationName: t.CreationName,
		CreationDate: t.CreationDate,
		RevisionName: t.RevisionName,
		RevisionDate: t.RevisionDate,
		DealName:     t.DealName,
		DealType:     t.DealType,
		SourceListID: t.SourceListID,
		Side:         t.Side,
	}
}

func toTrade(m *TradeModel) *domain.Trade {
	return &domain.Trade{
		ID:           m.ID,
		Account:      m.Account,
		Type:         m.Type,
		BuyQuantity:  m.BuyQuantity,
		SellQuantity: m.SellQuantity,
		BuyPrice:     m.BuyPrice,
		SellPrice:    m.SellPrice,
		Benchmark:    m.Benchmark,
		TradeDate:    m.TradeDate,
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
