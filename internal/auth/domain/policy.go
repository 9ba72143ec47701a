package domain

import "strings"

// Policy 基于路径模式的访问策略
//
// 模式支持精确匹配与 "/prefix/**" 前缀匹配；公开路径优先于管理员路径，
// 其余路径均要求登录。
type Policy struct {
	public []string
	admin  []string
}

// NewPolicy 创建访问策略
func NewPolicy(public, admin []string) *Policy {
	return &Policy{
		public: append([]string(nil), public...),
		admin:  append([]string(nil), admin...),
	}
}

// Required 返回路径的访问要求
func (p *Policy) Required(path string) Requirement {
	for _, pattern := range p.public {
		if MatchPattern(pattern, path) {
			return RequirePublic
		}
	}
	for _, pattern := range p.admin {
		if MatchPattern(pattern, path) {
			return RequireAdmin
		}
	}
	return RequireAuthenticated
}

// MatchPattern 判断路径是否匹配模式
func MatchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return pattern == path
}
