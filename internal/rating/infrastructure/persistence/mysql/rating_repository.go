package mysql

import (
	"context"

	"github.com/wyfcoding/poseidon/internal/rating/domain"
	"github.com/wyfcoding/poseidon/pkg/db"
	"gorm.io/gorm"
)

// RatingModel rating 表映射
type RatingModel struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement"`
	MoodysRating string `gorm:"column:moodys_rating;type:varchar(125)"`
	SandPRating  string `gorm:"column:sandp_rating;type:varchar(125)"`
	FitchRating  string `gorm:"column:fitch_rating;type:varchar(125)"`
	OrderNumber  *int   `gorm:"column:order_number"`
}

func (RatingModel) TableName() string {
	return "rating"
}

type ratingRepository struct {
	db *gorm.DB
	tx *db.Transactor
}

// NewRatingRepository 创建评级仓储
func NewRatingRepository(gdb *gorm.DB) domain.RatingRepository {
	return &ratingRepository{db: gdb, tx: db.NewTransactor(gdb)}
}

func (r *ratingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTx(ctx, fn)
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]*domain.Rating, error) {
	var models []RatingModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Rating, 0, len(models))
	for i := range models {
		out = append(out, toRating(&models[i]))
	}
	return out, nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id uint) (*domain.Rating, error) {
	var model RatingModel
	err := db.Conn(ctx, r.db).First(&model, id).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toRating(&model), nil
}

func (r *ratingRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&RatingModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ratingRepository) Save(ctx context.Context, rating *domain.Rating) error {
	model := toRatingModel(rating)
	if err := db.Conn(ctx, r.db).Save(model).Error; err != nil {
		return err
	}
	rating.ID = model.ID
	return nil
}

func (r *ratingRepository) DeleteByID(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Delete(&RatingModel{}, id).Error
}

func toRatingModel(r *domain.Rating) *RatingModel {
	return &RatingModel{
		ID:           r.ID,
		MoodysRating: r.MoodysRating,
		SandPRating:  r.SandPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  r.OrderNumber,
	}
}

func toRating(m *RatingModel) *domain.Rating {
	return &domain.Rating{
		ID:           m.ID,
		MoodysRating: m.MoodysRating,
		SandPRating:  m.SandPRating,
		FitchRating:  m.FitchRating,
		OrderNumber:  m.OrderNumber,
	}
}
