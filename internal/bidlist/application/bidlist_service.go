package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/bidlist/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// BidListCommand 报价单的全部可变字段
type BidListCommand struct {
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
	DealName     string
	DealType     string
	SourceListID string
	Side         string
}

func (c BidListCommand) applyTo(b *domain.BidList) {
	b.Account = c.Account
	b.Type = c.Type
	b.BidQuantity = c.BidQuantity
	b.AskQuantity = c.AskQuantity
	b.Bid = c.Bid
	b.Ask = c.Ask
	b.Benchmark = c.Benchmark
	b.BidListDate = c.BidListDate
	b.Commentary = c.Commentary
	b.Security = c.Security
	b.Status = c.Status
	b.Trader = c.Trader
	b.Book = c.Book
	b.DealName = c.DealName
	b.DealType = c.DealType
	b.SourceListID = c.SourceListID
	b.Side = c.Side
}

// BidListService 报价单应用服务
type BidListService struct {
	repo      domain.BidListRepository
	publisher mq.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewBidListService 创建报价单应用服务
func NewBidListService(repo domain.BidListRepository, publisher mq.Publisher, m *metrics.Metrics) *BidListService {
	return &BidListService{repo: repo, publisher: publisher, metrics: m, now: time.Now}
}

// List 返回全部报价单
func (s *BidListService) List(ctx context.Context) ([]*domain.BidList, error) {
	return s.repo.FindAll(ctx)
}

// Get 按 id 获取报价单
func (s *BidListService) Get(ctx context.Context, id uint) (*domain.BidList, error) {
	bid, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
	}
	return bid, nil
}

// CheckIfIDExists 判断报价单是否存在
func (s *BidListService) CheckIfIDExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Create 创建报价单，记录创建人与创建时间
func (s *BidListService) Create(ctx context.Context, actor *authdomain.Principal, cmd BidListCommand) (*domain.BidList, error) {
	bid := domain.NewBidList(cmd.Account, cmd.Type, cmd.BidQuantity)
	cmd.applyTo(bid)
	bid.MarkCreated(actor.Actor(), s.now())

	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Save(txCtx, bid)
	}); err != nil {
		return nil, fmt.Errorf("create bid list: %w", err)
	}
	s.emit(ctx, domain.BidListCreatedEventType, "create", actor, bid)
	return bid, nil
}

// Update 覆盖可变字段并记录修改人与修改时间
func (s *BidListService) Update(ctx context.Context, actor *authdomain.Principal, id uint, cmd BidListCommand) (*domain.BidList, error) {
	var bid *domain.BidList
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
		bid = existing
		return s.repo.Save(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.BidListUpdatedEventType, "update", actor, bid)
	return bid, nil
}

// Delete 按 id 删除报价单
func (s *BidListService) Delete(ctx context.Context, actor *authdomain.Principal, id uint) error {
	var bid *domain.BidList
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		bid = existing
		return s.repo.DeleteByID(txCtx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, domain.BidListDeletedEventType, "delete", actor, bid)
	return nil
}

func (s *BidListService) emit(ctx context.Context, topic, op string, actor *authdomain.Principal, b *domain.BidList) {
	s.metrics.RecordMutation("bidlist", op)
	logger.Info(ctx, "bid list "+op+"d", "id", b.ID, "account", b.Account, "actor", actor.Actor())
	if s.publisher == nil {
		return
	}
	event := domain.BidListChangedEvent{
		BidListID:   b.ID,
		Account:     b.Account,
		Type:        b.Type,
		BidQuantity: b.BidQuantity,
		Actor:       actor.Actor(),
		OccurredOn:  s.now(),
	}
	if err := s.publisher.Publish(ctx, topic, fmt.Sprint(b.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish bid list event", "topic", topic, "error", err)
	}
}
