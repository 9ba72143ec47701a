package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/trade/application"
	"github.com/wyfcoding/poseidon/internal/trade/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

const listPath = "/trade/list"

// Handler 成交页面处理器
type Handler struct {
	svc *application.TradeService
}

// NewHandler 创建成交页面处理器
func NewHandler(svc *application.TradeService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册 /trade 路由
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/trade")
	g.GET("/list", web.Authed(h.List))
	g.GET("/add", web.Authed(h.AddForm))
	g.POST("/validate", web.Authed(h.Validate))
	g.GET("/update/:id", web.Authed(h.UpdateForm))
	g.POST("/update/:id", web.Authed(h.Update))
	g.GET("/delete/:id", web.Authed(h.Delete))
}

func (h *Handler) List(c *gin.Context, _ *authdomain.Principal) {
	trades, err := h.svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	web.Render(c, http.StatusOK, "trade/list", gin.H{"Trades": trades})
}

func (h *Handler) AddForm(c *gin.Context, _ *authdomain.Principal) {
	web.Render(c, http.StatusOK, "trade/add", gin.H{"Form": TradeForm{}})
}

func (h *Handler) Validate(c *gin.Context, principal *authdomain.Principal) {
	var form TradeForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "trade/add", gin.H{"Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), principal, form.command()); err != nil {
		web.ServerError(c, err)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) UpdateForm(c *gin.Context, _ *authdomain.Principal) {
	id, ok := web.ParseID(c, "trade")
	if !ok {
		return
	}
	trade, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, id)
		return
	}
	web.Render(c, http.StatusOK, "trade/update", gin.H{"ID": id, "Form": formOf(trade)})
}

func (h *Handler) Update(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "trade")
	if !ok {
		return
	}
	var form TradeForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "trade/update", gin.H{"ID": id, "Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), principal, id, form.command()); err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) Delete(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "trade")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal, id); err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) fail(c *gin.Context, err error, id uint) {
	if errors.Is(err, domain.ErrNotFound) {
		web.NotFound(c, web.InvalidID("trade", id))
		return
	}
	web.ServerError(c, err)
}
