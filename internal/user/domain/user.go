// Package domain 用户领域模型
package domain

import (
	"time"
	"unicode"
	"unicode/utf8"

	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
)

const (
	// MinPasswordLength 密码最小字符数
	MinPasswordLength = 8
	// MaxPasswordBytes bcrypt 可处理的最大字节数
	MaxPasswordBytes = 72
)

// User 系统登录用户
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	Fullname     string
	Role         authdomain.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser 创建用户，passwordHash 必须已经过哈希
func NewUser(username, passwordHash, fullname string, role authdomain.Role) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Fullname:     fullname,
		Role:         role,
	}
}

// ValidUsername 用户名只允许字母和数字
func ValidUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// ValidPassword 强密码：至少 8 个字符，包含 ASCII 数字与大写字母，且不超过 72 字节
func ValidPassword(password string) bool {
	if len(password) > MaxPasswordBytes || utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}
	var digit, upper bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
	}
	return digit && upper
}
