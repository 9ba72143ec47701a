// Package domain 交易规则领域模型
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound 规则不存在
var ErrNotFound = errors.New("rule name not found")

// RuleName 交易规则定义
type RuleName struct {
	ID          uint
	Name        string
	Description string
	JSON        string
	Template    string
	SQLStr      string
	SQLPart     string
}

// NewRuleName 创建规则
func NewRuleName(name, description, json, template, sqlStr, sqlPart string) *RuleName {
	return &RuleName{
		Name:        name,
		Description: description,
		JSON:        json,
		Template:    template,
		SQLStr:      sqlStr,
		SQLPart:     sqlPart,
	}
}

// RuleNameRepository 规则仓储接口
type RuleNameRepository interface {
	FindAll(ctx context.Context) ([]*RuleName, error)
	// FindByID 不存在时返回 nil, nil
	FindByID(ctx context.Context, id uint) (*RuleName, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, rule *RuleName) error
	DeleteByID(ctx context.Context, id uint) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	RuleNameCreatedEventType = "rulename.created"
	RuleNameUpdatedEventType = "rulename.updated"
	RuleNameDeletedEventType = "rulename.deleted"
)

// RuleNameChangedEvent 规则变更事件
type RuleNameChangedEvent struct {
	RuleNameID uint      `json:"rule_name_id"`
	Name       string    `json:"name"`
	Actor      string    `json:"actor"`
	OccurredOn time.Time `json:"occurred_on"`
}
