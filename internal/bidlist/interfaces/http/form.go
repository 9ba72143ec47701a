package http

import (
	"github.com/wyfcoding/poseidon/internal/bidlist/application"
	"github.com/wyfcoding/poseidon/internal/bidlist/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

// BidListForm 报价单表单，数值与日期以字符串接收，空串表示未填写
type BidListForm struct {
	Account      string `form:"account" binding:"required,max=30"`
	Type         string `form:"type" binding:"required,max=30"`
	BidQuantity  string `form:"bidQuantity" binding:"omitempty,numeric,amount"`
	AskQuantity  string `form:"askQuantity" binding:"omitempty,numeric,amount"`
	Bid          string `form:"bid" binding:"omitempty,numeric,amount"`
	Ask          string `form:"ask" binding:"omitempty,numeric,amount"`
	Benchmark    string `form:"benchmark" binding:"max=125"`
	BidListDate  string `form:"bidListDate" binding:"omitempty,datetime=2006-01-02T15:04"`
	Commentary   string `form:"commentary" binding:"max=125"`
	Security     string `form:"security" binding:"max=125"`
	Status       string `form:"status" binding:"max=10"`
	Trader       string `form:"trader" binding:"max=125"`
	Book         string `form:"book" binding:"max=125"`
	DealName     string `form:"dealName" binding:"max=125"`
	DealType     string `form:"dealType" binding:"max=125"`
	SourceListID string `form:"sourceListId" binding:"max=125"`
	Side         string `form:"side" binding:"max=125"`
}

func (f BidListForm) command() application.BidListCommand {
	return application.BidListCommand{
		Account:      f.Account,
		Type:         f.Type,
		BidQuantity:  web.NullDecimal(f.BidQuantity),
		AskQuantity:  web.NullDecimal(f.AskQuantity),
		Bid:          web.NullDecimal(f.Bid),
		Ask:          web.NullDecimal(f.Ask),
		Benchmark:    f.Benchmark,
		BidListDate:  web.DateTime(f.BidListDate),
		Commentary:   f.Commentary,
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

func formOf(b *domain.BidList) BidListForm {
	return BidListForm{
		Account:      b.Account,
		Type:         b.Type,
		BidQuantity:  web.DecimalString(b.BidQuantity),
		AskQuantity:  web.DecimalString(b.AskQuantity),
		Bid:          web.DecimalString(b.Bid),
		Ask:          web.DecimalString(b.Ask),
		Benchmark:    b.Benchmark,
		BidListDate:  web.DateTimeString(b.BidListDate),
		Commentary:   b.Commentary,
		Security:     b.Security,
		Status:       b.Status,
		Trader:       b.Trader,
		Book:         b.Book,
		DealName:     b.DealName,
		DealType:     b.DealType,
		SourceListID: b.SourceListID,
		Side:         b.Side,
	}
}
