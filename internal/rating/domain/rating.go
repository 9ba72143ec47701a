// Package domain 评级领域模型
package domain

import (
	"context"
	"errors"
)

// ErrNotFound 评级不存在
var ErrNotFound = errors.New("rating not found")

// Rating 三家机构的信用评级
type Rating struct {
	ID           uint
	MoodysRating string
	SandPRating  string
	FitchRating  string
	OrderNumber  *int
}

// NewRating 创建评级
func NewRating(moodysRating, sandPRating, fitchRating string, orderNumber *int) *Rating {
	return &Rating{
		MoodysRating: moodysRating,
		SandPRating:  sandPRating,
		FitchRating:  fitchRating,
		OrderNumber:  orderNumber,
	}
}

// RatingRepository 评级仓储接口
type RatingRepository interface {
	FindAll(ctx context.Context) ([]*Rating, error)
	// FindByID 不存在时返回 nil, nil
	FindByID(ctx context.Context, id uint) (*Rating, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, rating *Rating) error
	DeleteByID(ctx context.Context, id uint) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
