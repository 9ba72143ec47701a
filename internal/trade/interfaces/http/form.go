package http

import (
	"github.com/wyfcoding/poseidon/internal/trade/application"
	"github.com/wyfcoding/poseidon/internal/trade/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

// TradeForm 成交表单
type TradeForm struct {
	Account      string `form:"account" binding:"required,max=30"`
	Type         string `form:"type" binding:"required,max=30"`
	BuyQuantity  string `form:"buyQuantity" binding:"required,numeric,amount"`
	SellQuantity string `form:"sellQuantity" binding:"omitempty,numeric,amount"`
	BuyPrice     string `form:"buyPrice" binding:"omitempty,numeric,amount"`
	SellPrice    string `form:"sellPrice" binding:"omitempty,numeric,amount"`
	Benchmark    string `form:"benchmark" binding:"max=125"`
	TradeDate    string `form:"tradeDate" binding:"omitempty,datetime=2006-01-02T15:04"`
	Security     string `form:"security" binding:"max=125"`
	Status       string `form:"status" binding:"max=10"`
	Trader       string `form:"trader" binding:"max=125"`
	Book         string `form:"book" binding:"max=125"`
	DealName     string `form:"dealName" binding:"max=125"`
	DealType     string `form:"dealType" binding:"max=125"`
	SourceListID string `form:"sourceListId" binding:"max=125"`
	Side         string `form:"side" binding:"max=125"`
}

func (f TradeForm) command() application.TradeCommand {
	return application.TradeCommand{
		Account:      f.Account,
		Type:         f.Type,
		BuyQuantity:  web.Decimal(f.BuyQuantity),
		SellQuantity: web.NullDecimal(f.SellQuantity),
		BuyPrice:     web.NullDecimal(f.BuyPrice),
		SellPrice:    web.NullDecimal(f.SellPrice),
		Benchmark:    f.Benchmark,
		TradeDate:    web.DateTime(f.TradeDate),
		Security:     f.Security,
		Status:       f.Status,
		Trader:       f.Trader,
		Book:         f.Book,
		DealName:     f.DealName,
		DealType:     f.DealType,
		SourceListID: f.SourceListID,
		Side:         f.Side,
	}
}

func formOf(t *domain.Trade) TradeForm {
	return TradeForm{
		Account:      t.Account,
		Type:         t.Type,
		BuyQuantity:  t.BuyQuantity.String(),
		SellQuantity: web.DecimalString(t.SellQuantity),
		BuyPrice:     web.DecimalString(t.BuyPrice),
		SellPrice:    web.DecimalString(t.SellPrice),
		Benchmark:    t.Benchmark,
		TradeDate:    web.DateTimeString(t.TradeDate),
		Security:     t.Security,
		Status:       t.Status,
		Trader:       t.Trader,
		Book:         t.Book,
		DealName:     t.DealName,
		DealType:     t.DealType,
		SourceListID: t.SourceListID,
		Side:         t.Side,
	}
}
