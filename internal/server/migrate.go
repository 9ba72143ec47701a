package server

import (
	"context"
	"fmt"

	bidlistmysql "github.com/wyfcoding/poseidon/internal/bidlist/infrastructure/persistence/mysql"
	curvepointmysql "github.com/wyfcoding/poseidon/internal/curvepoint/infrastructure/persistence/mysql"
	ratingmysql "github.com/wyfcoding/poseidon/internal/rating/infrastructure/persistence/mysql"
	rulenamemysql "github.com/wyfcoding/poseidon/internal/rulename/infrastructure/persistence/mysql"
	trademysql "github.com/wyfcoding/poseidon/internal/trade/infrastructure/persistence/mysql"
	usermysql "github.com/wyfcoding/poseidon/internal/user/infrastructure/persistence/mysql"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"gorm.io/gorm"
)

// Models 全部持久化模型，每个实体一张独立的表
func Models() []any {
	return []any{
		&bidlistmysql.BidListModel{},
		&curvepointmysql.CurvePointModel{},
		&ratingmysql.RatingModel{},
		&rulenamemysql.RuleNameModel{},
		&trademysql.TradeModel{},
		&usermysql.UserModel{},
	}
}

// Migrate 自动迁移表结构
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info(ctx, "database migrated", "tables", len(Models()))
	return nil
}
