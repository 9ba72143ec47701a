// Package http 首页与管理员入口
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

// AdminHomeTarget /admin/home 跳转目标
const AdminHomeTarget = "/bidList/list"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", web.Authed(h.Home))
	r.GET("/admin/home", web.Authed(h.AdminHome))
}

// Home 首页
func (h *Handler) Home(c *gin.Context, _ *authdomain.Principal) {
	web.Render(c, http.StatusOK, "home", nil)
}

// AdminHome 跳转到报价单列表
func (h *Handler) AdminHome(c *gin.Context, _ *authdomain.Principal) {
	web.RedirectTo(c, AdminHomeTarget)
}
