package domain

// Principal 已认证的请求主体，由处理器显式接收
type Principal struct {
	UserID   uint
	Username string
	Fullname string
	Role     Role
}

// IsAdmin 是否为管理员
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// DisplayName 页面头部展示的名称，优先使用全名
func (p *Principal) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Fullname != "" {
		return p.Fullname
	}
	return p.Username
}

// Is 判断主体是否为指定用户
func (p *Principal) Is(userID uint) bool {
	return p != nil && p.UserID == userID
}

// Actor 审计字段与事件中记录的操作人
func (p *Principal) Actor() string {
	if p == nil {
		return ""
	}
	return p.Username
}
