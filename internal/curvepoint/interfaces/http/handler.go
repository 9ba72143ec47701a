package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/curvepoint/application"
	"github.com/wyfcoding/poseidon/internal/curvepoint/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

const listPath = "/curvePoint/list"

// CurvePointForm 曲线点表单
type CurvePointForm struct {
	CurveID  string `form:"curveId" binding:"required,number,max=9"`
	AsOfDate string `form:"asOfDate" binding:"omitempty,datetime=2006-01-02T15:04"`
	Term     string `form:"term" binding:"omitempty,numeric,amount"`
	Value    string `form:"value" binding:"omitempty,numeric,amount"`
}

func (f CurvePointForm) command() application.CurvePointCommand {
	return application.CurvePointCommand{
		CurveID:  web.Int(f.CurveID),
		AsOfDate: web.DateTime(f.AsOfDate),
		Term:     web.NullDecimal(f.Term),
		Value:    web.NullDecimal(f.Value),
	}
}

func formOf(p *domain.CurvePoint) CurvePointForm {
	return CurvePointForm{
		CurveID:  web.IntString(&p.CurveID),
		AsOfDate: web.DateTimeString(p.AsOfDate),
		Term:     web.DecimalString(p.Term),
		Value:    web.DecimalString(p.Value),
	}
}

// Handler 曲线点页面处理器
type Handler struct {
	svc *application.CurvePointService
}

// NewHandler 创建曲线点页面处理器
func NewHandler(svc *application.CurvePointService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册 /curvePoint 路由
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/curvePoint")
	g.GET("/list", web.Authed(h.List))
	g.GET("/add", web.Authed(h.AddForm))
	g.POST("/validate", web.Authed(h.Validate))
	g.GET("/update/:id", web.Authed(h.UpdateForm))
	g.POST("/update/:id", web.Authed(h.Update))
	g.GET("/delete/:id", web.Authed(h.Delete))
}

func (h *Handler) List(c *gin.Context, _ *authdomain.Principal) {
	points, err := h.svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	web.Render(c, http.StatusOK, "curvePoint/list", gin.H{"CurvePoints": points})
}

func (h *Handler) AddForm(c *gin.Context, _ *authdomain.Principal) {
	web.Render(c, http.StatusOK, "curvePoint/add", gin.H{"Form": CurvePointForm{}})
}

func (h *Handler) Validate(c *gin.Context, principal *authdomain.Principal) {
	var form CurvePointForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "curvePoint/add", gin.H{"Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), principal, form.command()); err != nil {
		web.ServerError(c, err)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) UpdateForm(c *gin.Context, _ *authdomain.Principal) {
	id, ok := web.ParseID(c, "curvePoint")
	if !ok {
		return
	}
	point, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, id)
		return
	}
	web.Render(c, http.StatusOK, "curvePoint/update", gin.H{"ID": id, "Form": formOf(point)})
}

func (h *Handler) Update(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "curvePoint")
	if !ok {
		return
	}
	var form CurvePointForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "curvePoint/update", gin.H{"ID": id, "Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), principal, id, form.command()); err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) Delete(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "curvePoint")
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
		web.NotFound(c, web.InvalidID("curvePoint", id))
		return
	}
	web.ServerError(c, err)
}
