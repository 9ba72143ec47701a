package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/poseidon/internal/auth/application"
	"github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/web"
	"github.com/wyfcoding/poseidon/pkg/logger"
)

// CookieConfig 会话 Cookie 设置
type CookieConfig struct {
	Name   string
	Secure bool
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Handler 登录、登出与 /app 页面
type Handler struct {
	svc        *application.AuthService
	cookie     CookieConfig
	successURL string
}

// NewHandler 创建认证处理器
func NewHandler(svc *application.AuthService, cookie CookieConfig, successURL string) *Handler {
	if successURL == "" {
		successURL = "/bidList/list"
	}
	return &Handler{svc: svc, cookie: cookie, successURL: successURL}
}

// RegisterRoutes 注册登录相关路由，loginGuard 作用于 POST /login
func (h *Handler) RegisterRoutes(r gin.IRouter, loginGuard ...gin.HandlerFunc) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", append(loginGuard, h.Login)...)
	r.GET("/logout", h.Logout)

	app := r.Group("/app")
	app.GET("/login", h.LoginPage)
	app.GET("/logout", h.LogoutPage)
	app.GET("/error", h.ErrorPage)
}

// LoginPage 登录页
func (h *Handler) LoginPage(c *gin.Context) {
	web.Render(c, http.StatusOK, "login", gin.H{
		"Error":  c.Query("error") != "",
		"Logout": c.Query("logout") != "",
	})
}

// Login 表单登录
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	session, err := h.svc.Login(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		logger.Info(c.Request.Context(), "login failed", "username", form.Username, "client_ip", c.ClientIP())
		web.RedirectTo(c, web.LoginPath+"?error=true")
		return
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}

	h.cookie.write(c, session.ID, int(h.svc.TTL().Seconds()))
	web.RedirectTo(c, h.successURL)
}

// Logout 使会话失效、清除 Cookie 并跳转登录页
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.cookie.Name); err == nil && sessionID != "" {
		if err := h.svc.Logout(c.Request.Context(), sessionID); err != nil {
			logger.Warn(c.Request.Context(), "logout failed", "error", err)
		}
	}
	h.cookie.write(c, "", -1)
	web.RedirectTo(c, web.LoginPath+"?logout=true")
}

// LogoutPage 登出确认页
func (h *Handler) LogoutPage(c *gin.Context) {
	web.Render(c, http.StatusOK, "logout", nil)
}

// ErrorPage 无权访问页
func (h *Handler) ErrorPage(c *gin.Context) {
	web.Forbidden(c)
}

// LoginRejected 登录限流时的响应
func LoginRejected(c *gin.Context) {
	web.Render(c, http.StatusTooManyRequests, "login", gin.H{
		"Error":   true,
		"Message": "Too many login attempts, please try again later.",
	})
}

func (cc CookieConfig) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.Name, value, maxAge, "/", "", cc.Secure, true)
}
