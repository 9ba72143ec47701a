package application

import (
	"context"
	"fmt"
	"time"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/rating/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
)

// RatingCommand 创建或更新评级的输入
type RatingCommand struct {
	MoodysRating string
	SandPRating  string
	FitchRating  string
	OrderNumber  *int
}

// RatingService 评级应用服务
type RatingService struct {
	repo      domain.RatingRepository
	publisher mq.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewRatingService 创建评级应用服务
func NewRatingService(repo domain.RatingRepository, publisher mq.Publisher, m *metrics.Metrics) *RatingService {
	return &RatingService{repo: repo, publisher: publisher, metrics: m, now: time.Now}
}

// List 返回全部评级，按 id 升序
func (s *RatingService) List(ctx context.Context) ([]*domain.Rating, error) {
	return s.repo.FindAll(ctx)
}

// Get 按 id 获取评级
func (s *RatingService) Get(ctx context.Context, id uint) (*domain.Rating, error) {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
	}
	return rating, nil
}

// CheckIfIDExists 判断评级是否存在
func (s *RatingService) CheckIfIDExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Create 创建评级
func (s *RatingService) Create(ctx context.Context, actor *authdomain.Principal, cmd RatingCommand) (*domain.Rating, error) {
	rating := domain.NewRating(cmd.MoodysRating, cmd.SandPRating, cmd.FitchRating, cmd.OrderNumber)
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Save(txCtx, rating)
	})
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	s.emit(ctx, domain.RatingCreatedEventType, "create", actor, rating)
	return rating, nil
}

// Update 覆盖评级的全部可变字段
func (s *RatingService) Update(ctx context.Context, actor *authdomain.Principal, id uint, cmd RatingCommand) (*domain.Rating, error) {
	var rating *domain.Rating
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		existing.MoodysRating = cmd.MoodysRating
		existing.SandPRating = cmd.SandPRating
		existing.FitchRating = cmd.FitchRating
		existing.OrderNumber = cmd.OrderNumber
		rating = existing
		return s.repo.Save(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.RatingUpdatedEventType, "update", actor, rating)
	return rating, nil
}

// Delete 按 id 删除评级
func (s *RatingService) Delete(ctx context.Context, actor *authdomain.Principal, id uint) error {
	var rating *domain.Rating
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrNotFound, id)
		}
		rating = existing
		return s.repo.DeleteByID(txCtx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, domain.RatingDeletedEventType, "delete", actor, rating)
	return nil
}

func (s *RatingService) emit(ctx context.Context, topic, op string, actor *authdomain.Principal, r *domain.Rating) {
	s.metrics.RecordMutation("rating", op)
	logger.Info(ctx, "rating "+op+"d", "id", r.ID, "actor", actor.Actor())
	if s.publisher == nil {
		return
	}
	event := domain.RatingChangedEvent{
		RatingID:     r.ID,
		MoodysRating: r.MoodysRating,
		SandPRating:  r.SandPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  r.OrderNumber,
		Actor:        actor.Actor(),
		OccurredOn:   s.now(),
	}
	if err := s.publisher.Publish(ctx, topic, fmt.Sprint(r.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish rating event", "topic", topic, "error", err)
	}
}
