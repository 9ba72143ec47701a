package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/rating/application"
	"github.com/wyfcoding/poseidon/internal/rating/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

const listPath = "/rating/list"

// RatingForm 评级表单
type RatingForm struct {
	MoodysRating string `form:"moodysRating" binding:"required,max=125"`
	SandPRating  string `form:"sandPRating" binding:"required,max=125"`
	FitchRating  string `form:"fitchRating" binding:"required,max=125"`
	OrderNumber  string `form:"orderNumber" binding:"omitempty,number,max=9"`
}

func (f RatingForm) command() application.RatingCommand {
	return application.RatingCommand{
		MoodysRating: f.MoodysRating,
		SandPRating:  f.SandPRating,
		FitchRating:  f.FitchRating,
		OrderNumber:  web.NullInt(f.OrderNumber),
	}
}

func formOf(r *domain.Rating) RatingForm {
	return RatingForm{
		MoodysRating: r.MoodysRating,
		SandPRating:  r.SandPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  web.IntString(r.OrderNumber),
	}
}

// Handler 评级页面处理器
type Handler struct {
	svc *application.RatingService
}

// NewHandler 创建评级页面处理器
func NewHandler(svc *application.RatingService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册 /rating 路由
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/rating")
	g.GET("/list", web.Authed(h.List))
	g.GET("/add", web.Authed(h.AddForm))
	g.POST("/validate", web.Authed(h.Validate))
	g.GET("/update/:id", web.Authed(h.UpdateForm))
	g.POST("/update/:id", web.Authed(h.Update))
	g.GET("/delete/:id", web.Authed(h.Delete))
}

// List 评级列表
func (h *Handler) List(c *gin.Context, _ *authdomain.Principal) {
	ratings, err := h.svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	web.Render(c, http.StatusOK, "rating/list", gin.H{"Ratings": ratings})
}

// AddForm 新增表单
func (h *Handler) AddForm(c *gin.Context, _ *authdomain.Principal) {
	web.Render(c, http.StatusOK, "rating/add", gin.H{"Form": RatingForm{}})
}

// Validate 校验并保存新评级
func (h *Handler) Validate(c *gin.Context, principal *authdomain.Principal) {
	var form RatingForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "rating/add", gin.H{"Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), principal, form.command()); err != nil {
		web.ServerError(c, err)
		return
	}
	web.RedirectTo(c, listPath)
}

// UpdateForm 更新表单
func (h *Handler) UpdateForm(c *gin.Context, _ *authdomain.Principal) {
	id, ok := web.ParseID(c, "rating")
	if !ok {
		return
	}
	rating, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, id)
		return
	}
	web.Render(c, http.StatusOK, "rating/update", gin.H{"ID": id, "Form": formOf(rating)})
}

// Update 校验并保存更新
func (h *Handler) Update(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "rating")
	if !ok {
		return
	}
	var form RatingForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "rating/update", gin.H{"ID": id, "Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), principal, id, form.command()); err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

// Delete 删除评级
func (h *Handler) Delete(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "rating")
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
		web.NotFound(c, web.InvalidID("rating", id))
		return
	}
	web.ServerError(c, err)
}
