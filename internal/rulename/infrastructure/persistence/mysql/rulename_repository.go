package mysql

import (
	"context"

	"github.com/wyfcoding/poseidon/internal/rulename/domain"
	"github.com/wyfcoding/poseidon/pkg/db"
	"gorm.io/gorm"
)

// RuleNameModel rulename 表映射
type RuleNameModel struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;type:varchar(125)"`
	Description string `gorm:"column:description;type:varchar(125)"`
	JSON        string `gorm:"column:json;type:varchar(125)"`
	Template    string `gorm:"column:template;type:varchar(512)"`
	SQLStr      string `gorm:"column:sql_str;type:varchar(125)"`
	SQLPart     string `gorm:"column:sql_part;type:varchar(125)"`
}

func (RuleNameModel) TableName() string {
	return "rulename"
}

type ruleNameRepository struct {
	db *gorm.DB
	tx *db.Transactor
}

// NewRuleNameRepository 创建规则仓储
func NewRuleNameRepository(gdb *gorm.DB) domain.RuleNameRepository {
	return &ruleNameRepository{db: gdb, tx: db.NewTransactor(gdb)}
}

func (r *ruleNameRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTx(ctx, fn)
}

func (r *ruleNameRepository) FindAll(ctx context.Context) ([]*domain.RuleName, error) {
	var models []RuleNameModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.RuleName, 0, len(models))
	for i := range models {
		out = append(out, toRuleName(&models[i]))
	}
	return out, nil
}

func (r *ruleNameRepository) FindByID(ctx context.Context, id uint) (*domain.RuleName, error) {
	var model RuleNameModel
	err := db.Conn(ctx, r.db).First(&model, id).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toRuleName(&model), nil
}

func (r *ruleNameRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.Conn(ctx, r.db).Model(&RuleNameModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ruleNameRepository) Save(ctx context.Context, rule *domain.RuleName) error {
	model := &RuleNameModel{
		ID:          rule.ID,
		Name:        rule.Name,
		Description: rule.Description,
		JSON:        rule.JSON,
		Template:    rule.Template,
		SQLStr:      rule.SQLStr,
		SQLPart:     rule.SQLPart,
	}
	if err := db.Conn(ctx, r.db).Save(model).Error; err != nil {
		return err
	}
	rule.ID = model.ID
	return nil
}

func (r *ruleNameRepository) DeleteByID(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Delete(&RuleNameModel{}, id).Error
}

func toRuleName(m *RuleNameModel) *domain.RuleName {
	return &domain.RuleName{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		JSON:        m.JSON,
		Template:    m.Template,
		SQLStr:      m.SQLStr,
		SQLPart:     m.SQLPart,
	}
}
