package application

import (
	"context"
	"fmt"
	"time"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/rulename/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// RuleNameCommand 创建或更新规则的输入
type RuleNameCommand struct {
	Name        string
	Description string
	JSON        string
	Template    string
	SQLStr      string
	SQLPart     string
}

func (c RuleNameCommand) applyTo(r *domain.RuleName) {
	r.Name = c.Name
	r.Description = c.Description
	r.JSON = c.JSON
	r.Template = c.Template
	r.SQLStr = c.SQLStr
	r.SQLPart = c.SQLPart
}

// RuleNameService 规则应用服务
type RuleNameService struct {
	repo      domain.RuleNameRepository
	publisher mq.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewRuleNameService 创建规则应用服务
func NewRuleNameService(repo domain.RuleNameRepository, publisher mq.Publisher, m *metrics.Metrics) *RuleNameService {
	return &RuleNameService{repo: repo, publisher: publisher, metrics: m, now: time.Now}
}

func (s *RuleNameService) List(ctx context.Context) ([]*domain.RuleName, error) {
	return s.repo.FindAll(ctx)
}

func (s *RuleNameService) Get(ctx context.Context, id uint) (*domain.RuleName, error) {
	rule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
	}
	return rule, nil
}

func (s *RuleNameService) CheckIfIDExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *RuleNameService) Create(ctx context.Context, actor *authdomain.Principal, cmd RuleNameCommand) (*domain.RuleName, error) {
	rule := domain.NewRuleName(cmd.Name, cmd.Description, cmd.JSON, cmd.Template, cmd.SQLStr, cmd.SQLPart)
	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Save(txCtx, rule)
	}); err != nil {
		return nil, fmt.Errorf("create rule name: %w", err)
	}
	s.emit(ctx, domain.RuleNameCreatedEventType, "create", actor, rule)
	return rule, nil
}

func (s *RuleNameService) Update(ctx context.Context, actor *authdomain.Principal, id uint, cmd RuleNameCommand) (*domain.RuleName, error) {
	var rule *domain.RuleName
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		cmd.applyTo(existing)
		rule = existing
		return s.repo.Save(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.RuleNameUpdatedEventType, "update", actor, rule)
	return rule, nil
}

func (s *RuleNameService) Delete(ctx context.Context, actor *authdomain.Principal, id uint) error {
	var rule *domain.RuleName
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		rule = existing
		return s.repo.DeleteByID(txCtx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, domain.RuleNameDeletedEventType, "delete", actor, rule)
	return nil
}

func (s *RuleNameService) emit(ctx context.Context, topic, op string, actor *authdomain.Principal, r *domain.RuleName) {
	s.metrics.RecordMutation("rulename", op)
	logger.Info(ctx, "rule name "+op+"d", "id", r.ID, "name", r.Name, "actor", actor.Actor())
	if s.publisher == nil {
		return
	}
	event := domain.RuleNameChangedEvent{
		RuleNameID: r.ID,
		Name:       r.Name,
		Actor:      actor.Actor(),
		OccurredOn: s.now(),
	}
	if err := s.publisher.Publish(ctx, topic, fmt.Sprint(r.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish rule name event", "topic", topic, "error", err)
	}
}
