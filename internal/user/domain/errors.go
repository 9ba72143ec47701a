package domain

import "errors"

var (
	// ErrNotFound 用户不存在
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken 用户名已存在
	ErrUsernameTaken = errors.New("username already exists")
	// ErrSelfAction 不允许修改或删除当前登录账号
	ErrSelfAction = errors.New("you cannot modify or delete your own account")
	// ErrInvalidUsername 用户名包含非法字符
	ErrInvalidUsername = errors.New("username must contain only letters and digits")
	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = errors.New("password must be at least 8 characters and contain an uppercase letter and a digit (at most 72 bytes)")
)
