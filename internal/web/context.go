// Package web 提供各页面处理器共用的渲染、表单校验与请求上下文工具
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
)

const (
	principalKey = "poseidon.principal"
	sessionKey   = "poseidon.session"
	flasherKey   = "poseidon.flasher"
)

// LoginPath 登录页路径
const LoginPath = "/login"

// Flasher 会话闪存消息读写
type Flasher interface {
	AddFlash(ctx context.Context, session *authdomain.Session, kind authdomain.FlashKind, message string) error
	PopFlashes(ctx context.Context, session *authdomain.Session) []authdomain.Flash
}

// Bind 将会话、主体与闪存读写器挂到请求上下文
func Bind(c *gin.Context, session *authdomain.Session, principal *authdomain.Principal, flasher Flasher) {
	if session != nil {
		c.Set(sessionKey, session)
	}
	if principal != nil {
		c.Set(principalKey, principal)
	}
	if flasher != nil {
		c.Set(flasherKey, flasher)
	}
}

// PrincipalFrom 返回当前请求的主体，未登录时为 nil
func PrincipalFrom(c *gin.Context) *authdomain.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*authdomain.Principal); ok {
			return p
		}
	}
	return nil
}

// SessionFrom 返回当前请求的会话，未登录时为 nil
func SessionFrom(c *gin.Context) *authdomain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*authdomain.Session); ok {
			return s
		}
	}
	return nil
}

// Authed 把需要主体的处理器适配为 gin.HandlerFunc，主体缺失时跳转登录页
func Authed(h func(c *gin.Context, principal *authdomain.Principal)) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFrom(c)
		if principal == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		h(c, principal)
	}
}

// AddFlash 为下一次页面渲染追加一条消息
func AddFlash(c *gin.Context, kind authdomain.FlashKind, message string) {
	flasher, session := flasherFrom(c), SessionFrom(c)
	if flasher == nil || session == nil {
		return
	}
	if err := flasher.AddFlash(c.Request.Context(), session, kind, message); err != nil {
		logger.Warn(c.Request.Context(), "failed to store flash message", "error", err)
	}
}

func popFlashes(c *gin.Context) []authdomain.Flash {
	flasher, session := flasherFrom(c), SessionFrom(c)
	if flasher == nil || session == nil {
		return nil
	}
	return flasher.PopFlashes(c.Request.Context(), session)
}

func flasherFrom(c *gin.Context) Flasher {
	if v, ok := c.Get(flasherKey); ok {
		if f, ok := v.(Flasher); ok {
			return f
		}
	}
	return nil
}
