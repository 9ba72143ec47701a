package domain

import "errors"

var (
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrUnknownRole 未知角色
	ErrUnknownRole = errors.New("unknown role")
	// ErrSessionExpired 会话已过期
	ErrSessionExpired = errors.New("session expired")
)
