package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/curvepoint/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// CurvePointCommand 创建或更新曲线点的输入
type CurvePointCommand struct {
	CurveID  int
	AsOfDate *time.Time
	Term     decimal.NullDecimal
	Value    decimal.NullDecimal
}

// CurvePointService 曲线点应用服务
type CurvePointService struct {
	repo      domain.CurvePointRepository
	publisher mq.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewCurvePointService 创建曲线点应用服务
func NewCurvePointService(repo domain.CurvePointRepository, publisher mq.Publisher, m *metrics.Metrics) *CurvePointService {
	return &CurvePointService{repo: repo, publisher: publisher, metrics: m, now: time.Now}
}

// List 返回全部曲线点
func (s *CurvePointService) List(ctx context.Context) ([]*domain.CurvePoint, error) {
	return s.repo.FindAll(ctx)
}

// Get 按 id 获取曲线点
func (s *CurvePointService) Get(ctx context.Context, id uint) (*domain.CurvePoint, error) {
	point, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
	}
	return point, nil
}

// CheckIfIDExists 判断曲线点是否存在
func (s *CurvePointService) CheckIfIDExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Create 创建曲线点并记录创建时间
func (s *CurvePointService) Create(ctx context.Context, actor *authdomain.Principal, cmd CurvePointCommand) (*domain.CurvePoint, error) {
	point := domain.NewCurvePoint(cmd.CurveID, cmd.Term, cmd.Value)
	point.AsOfDate = cmd.AsOfDate
	s.setCreationDate(point)

	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Save(txCtx, point)
	}); err != nil {
		return nil, fmt.Errorf("create curve point: %w", err)
	}
	s.emit(ctx, domain.CurvePointCreatedEventType, "create", actor, point)
	return point, nil
}

// Update 覆盖可变字段，创建时间保持不变
func (s *CurvePointService) Update(ctx context.Context, actor *authdomain.Principal, id uint, cmd CurvePointCommand) (*domain.CurvePoint, error) {
	var point *domain.CurvePoint
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		existing.CurveID = cmd.CurveID
		existing.AsOfDate = cmd.AsOfDate
		existing.Term = cmd.Term
		existing.Value = cmd.Value
		point = existing
		return s.repo.Save(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.CurvePointUpdatedEventType, "update", actor, point)
	return point, nil
}

// Delete 按 id 删除曲线点
func (s *CurvePointService) Delete(ctx context.Context, actor *authdomain.Principal, id uint) error {
	var point *domain.CurvePoint
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		point = existing
		return s.repo.DeleteByID(txCtx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, domain.CurvePointDeletedEventType, "delete", actor, point)
	return nil
}

func (s *CurvePointService) setCreationDate(point *domain.CurvePoint) {
	now := s.now()
	point.CreationDate = &now
}

func (s *CurvePointService) emit(ctx context.Context, topic, op string, actor *authdomain.Principal, p *domain.CurvePoint) {
	s.metrics.RecordMutation("curvepoint", op)
	logger.Info(ctx, "curve point "+op+"d", "id", p.ID, "curve_id", p.CurveID, "actor", actor.Actor())
	if s.publisher == nil {
		return
	}
	event := domain.CurvePointChangedEvent{
		CurvePointID: p.ID,
		CurveID:      p.CurveID,
		Term:         p.Term,
		Value:        p.Value,
		Actor:        actor.Actor(),
		OccurredOn:   s.now(),
	}
	if err := s.publisher.Publish(ctx, topic, fmt.Sprint(p.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish curve point event", "topic", topic, "error", err)
	}
}
