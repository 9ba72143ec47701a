package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/rulename/application"
	"github.com/wyfcoding/poseidon/internal/rulename/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

const listPath = "/ruleName/list"

// RuleNameForm 规则表单
type RuleNameForm struct {
	Name        string `form:"name" binding:"required,max=125"`
	Description string `form:"description" binding:"max=125"`
	JSON        string `form:"json" binding:"max=125"`
	Template    string `form:"template" binding:"max=512"`
	SQLStr      string `form:"sqlStr" binding:"max=125"`
	SQLPart     string `form:"sqlPart" binding:"max=125"`
}

func (f RuleNameForm) command() application.RuleNameCommand {
	return application.RuleNameCommand(f)
}

// Handler 规则页面处理器
type Handler struct {
	svc *application.RuleNameService
}

func NewHandler(svc *application.RuleNameService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册 /ruleName 路由
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/ruleName")
	g.GET("/list", web.Authed(h.List))
	g.GET("/add", web.Authed(h.AddForm))
	g.POST("/validate", web.Authed(h.Validate))
	g.GET("/update/:id", web.Authed(h.UpdateForm))
	g.POST("/update/:id", web.Authed(h.Update))
	g.GET("/delete/:id", web.Authed(h.Delete))
}

func (h *Handler) List(c *gin.Context, _ *authdomain.Principal) {
	rules, err := h.svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	web.Render(c, http.StatusOK, "ruleName/list", gin.H{"RuleNames": rules})
}

func (h *Handler) AddForm(c *gin.Context, _ *authdomain.Principal) {
	web.Render(c, http.StatusOK, "ruleName/add", gin.H{"Form": RuleNameForm{}})
}

func (h *Handler) Validate(c *gin.Context, principal *authdomain.Principal) {
	var form RuleNameForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "ruleName/add", gin.H{"Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), principal, form.command()); err != nil {
		web.ServerError(c, err)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) UpdateForm(c *gin.Context, _ *authdomain.Principal) {
	id, ok := web.ParseID(c, "ruleName")
	if !ok {
		return
	}
	rule, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, id)
		return
	}
	form := RuleNameForm{
		Name:        rule.Name,
		Description: rule.Description,
		JSON:        rule.JSON,
		Template:    rule.Template,
		SQLStr:      rule.SQLStr,
		SQLPart:     rule.SQLPart,
	}
	web.Render(c, http.StatusOK, "ruleName/update", gin.H{"ID": id, "Form": form})
}

func (h *Handler) Update(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "ruleName")
	if !ok {
		return
	}
	var form RuleNameForm
	if errs := web.BindForm(c, &form); errs.Has() {
		web.Render(c, http.StatusOK, "ruleName/update", gin.H{"ID": id, "Form": form, "Errors": errs})
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), principal, id, form.command()); err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) Delete(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "ruleName")
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
		web.NotFound(c, web.InvalidID("ruleName", id))
		return
	}
	web.ServerError(c, err)
}
