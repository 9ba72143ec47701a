package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/poseidon/internal/auth/application"
	"github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/web"
	"github.com/wyfcoding/poseidon/pkg/logger"
)

// SessionMiddleware 从 Cookie 解析会话并加载请求主体。
// 会话有效时按服务端过期时间重写 Cookie，会话失效时清除 Cookie
func SessionMiddleware(svc *application.AuthService, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookie.Name)
		if err != nil || sessionID == "" {
			web.Bind(c, nil, nil, svc)
			c.Next()
			return
		}

		session, principal, err := svc.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			logger.Error(c.Request.Context(), "failed to resolve session", "error", err)
		}
		switch {
		case session != nil:
			if maxAge := int(time.Until(session.ExpiresAt).Seconds()); maxAge > 0 {
				cookie.write(c, session.ID, maxAge)
			}
		case err == nil:
			cookie.write(c, "", -1)
		}
		web.Bind(c, session, principal, svc)
		c.Next()
	}
}

// AccessMiddleware 按访问策略放行、跳转登录页或渲染 403
func AccessMiddleware(policy *domain.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		required := policy.Required(c.Request.URL.Path)
		if required == domain.RequirePublic {
			c.Next()
			return
		}

		principal := web.PrincipalFrom(c)
		if principal == nil {
			c.Redirect(http.StatusFound, web.LoginPath)
			c.Abort()
			return
		}
		if !principal.Role.Allows(required) {
			logger.Warn(c.Request.Context(), "access denied",
				"username", principal.Username,
				"role", principal.Role,
				"path", c.Request.URL.Path,
				"required", required.String(),
			)
			web.Forbidden(c)
			return
		}
		c.Next()
	}
}
