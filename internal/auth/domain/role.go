// Package domain 认证与授权领域模型：角色、主体、会话与访问策略
package domain

import (
	"fmt"
	"strings"
)

// Role 用户角色，仅有 ADMIN 与 USER 两种取值
type Role string

const (
	// RoleAdmin 管理员，可访问全部页面
	RoleAdmin Role = "ADMIN"
	// RoleUser 普通用户，可访问交易数据页面
	RoleUser Role = "USER"
)

// Roles 返回全部合法角色，按表单展示顺序
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser}
}

// ParseRole 严格解析角色，未知取值返回错误
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// AuthorityFor 将存储中的角色映射为授权角色：ADMIN 之外一律视为 USER
func AuthorityFor(stored string) Role {
	if Role(stored) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// IsValid 判断角色是否合法
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}

// Requirement 路径的访问要求
type Requirement int

const (
	// RequirePublic 无需登录
	RequirePublic Requirement = iota
	// RequireAuthenticated 任意已登录用户
	RequireAuthenticated
	// RequireAdmin 仅管理员
	RequireAdmin
)

func (r Requirement) String() string {
	switch r {
	case RequirePublic:
		return "public"
	case RequireAuthenticated:
		return "authenticated"
	case RequireAdmin:
		return "admin"
	default:
		return fmt.Sprintf("requirement(%d)", int(r))
	}
}

// Allows 判断该角色是否满足访问要求
func (r Role) Allows(req Requirement) bool {
	switch req {
	case RequirePublic, RequireAuthenticated:
		return r.IsValid()
	case RequireAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}
