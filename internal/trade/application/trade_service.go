package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/trade/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// TradeCommand 成交的全部可变字段
type TradeCommand struct {
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
	DealName     string
	DealType     string
	SourceListID string
	Side         string
}

func (c TradeCommand) applyTo(t *domain.Trade) {
	t.Account = c.Account
	t.Type = c.Type
	t.BuyQuantity = c.BuyQuantity
	t.SellQuantity = c.SellQuantity
	t.BuyPrice = c.BuyPrice
	t.SellPrice = c.SellPrice
	t.Benchmark = c.Benchmark
	t.TradeDate = c.TradeDate
	t.Security = c.Security
	t.Status = c.Status
	t.Trader = c.Trader
	t.Book = c.Book
	t.DealName = c.DealName
	t.DealType = c.DealType
	t.SourceListID = c.SourceListID
	t.Side = c.Side
}

// TradeService 成交应用服务
type TradeService struct {
	repo      domain.TradeRepository
	publisher mq.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewTradeService 创建成交应用服务
func NewTradeService(repo domain.TradeRepository, publisher mq.Publisher, m *metrics.Metrics) *TradeService {
	return &TradeService{repo: repo, publisher: publisher, metrics: m, now: time.Now}
}

func (s *TradeService) List(ctx context.Context) ([]*domain.Trade, error) {
	return s.repo.FindAll(ctx)
}

func (s *TradeService) Get(ctx context.Context, id uint) (*domain.Trade, error) {
	trade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
	}
	return trade, nil
}

func (s *TradeService) CheckIfIDExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Create 创建成交，记录创建人与创建时间
func (s *TradeService) Create(ctx context.Context, actor *authdomain.Principal, cmd TradeCommand) (*domain.Trade, error) {
	trade := domain.NewTrade(cmd.Account, cmd.Type, cmd.BuyQuantity)
	cmd.applyTo(trade)
	trade.MarkCreated(actor.Actor(), s.now())

	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Save(txCtx, trade)
	}); err != nil {
		return nil, fmt.Errorf("create trade: %w", err)
	}
	s.emit(ctx, domain.TradeCreatedEventType, "create", actor, trade)
	return trade, nil
}

// Update 覆盖可变字段并记录修改人与修改时间
func (s *TradeService) Update(ctx context.Context, actor *authdomain.Principal, id uint, cmd TradeCommand) (*domain.Trade, error) {
	var trade *domain.Trade
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		cmd.applyTo(existing)
		existing.MarkRevised(actor.Actor(), s.now())
		trade = existing
		return s.repo.Save(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.TradeUpdatedEventType, "update", actor, trade)
	return trade, nil
}

func (s *TradeService) Delete(ctx context.Context, actor *authdomain.Principal, id uint) error {
	var trade *domain.Trade
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		trade = existing
		return s.repo.DeleteByID(txCtx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, domain.TradeDeletedEventType, "delete", actor, trade)
	return nil
}

func (s *TradeService) emit(ctx context.Context, topic, op string, actor *authdomain.Principal, t *domain.Trade) {
	s.metrics.RecordMutation("trade", op)
	logger.Info(ctx, "trade "+op+"d", "id", t.ID, "account", t.Account, "actor", actor.Actor())
	if s.publisher == nil {
		return
	}
	event := domain.TradeChangedEvent{
		TradeID:     t.ID,
		Account:     t.Account,
		Type:        t.Type,
		BuyQuantity: t.BuyQuantity,
		Actor:       actor.Actor(),
		OccurredOn:  s.now(),
	}
	if err := s.publisher.Publish(ctx, topic, fmt.Sprint(t.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish trade event", "topic", topic, "error", err)
	}
}
