package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/user/application"
	"github.com/wyfcoding/poseidon/internal/user/domain"
	"github.com/wyfcoding/poseidon/internal/web"
)

const (
	listPath = "/user/list"
	addPath  = "/user/add"
)

// CreateUserForm 新增用户表单
type CreateUserForm struct {
	Username string `form:"username" binding:"required,max=125,alnum_username"`
	Password string `form:"password" binding:"required,strongpassword"`
	Fullname string `form:"fullname" binding:"required,max=125"`
	Role     string `form:"role" binding:"required,role"`
}

// UpdateUserForm 更新用户表单，用户名只读，密码留空表示不修改
type UpdateUserForm struct {
	Username string `form:"username"`
	Password string `form:"password" binding:"omitempty,strongpassword"`
	Fullname string `form:"fullname" binding:"required,max=125"`
	Role     string `form:"role" binding:"required,role"`
}

// Handler 用户管理页面处理器
type Handler struct {
	svc *application.UserService
}

// NewHandler 创建用户管理页面处理器
func NewHandler(svc *application.UserService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册 /user 路由，访问策略限定为 ADMIN
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/user")
	g.GET("/list", web.Authed(h.List))
	g.GET("/add", web.Authed(h.AddForm))
	g.POST("/validate", web.Authed(h.Validate))
	g.GET("/update/:id", web.Authed(h.UpdateForm))
	g.POST("/update/:id", web.Authed(h.Update))
	g.GET("/delete/:id", web.Authed(h.Delete))
}

// List 用户列表
func (h *Handler) List(c *gin.Context, _ *authdomain.Principal) {
	h.renderList(c, "user/list")
}

// ArticleDetails 只读用户列表页
func (h *Handler) ArticleDetails(c *gin.Context, _ *authdomain.Principal) {
	h.renderList(c, "app/article-details")
}

func (h *Handler) renderList(c *gin.Context, view string) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	web.Render(c, http.StatusOK, view, gin.H{"Users": users})
}

// AddForm 新增表单
func (h *Handler) AddForm(c *gin.Context, _ *authdomain.Principal) {
	web.Render(c, http.StatusOK, "user/add", gin.H{"Form": CreateUserForm{}, "Roles": authdomain.Roles()})
}

// Validate 校验并创建用户
func (h *Handler) Validate(c *gin.Context, principal *authdomain.Principal) {
	var form CreateUserForm
	if errs := web.BindForm(c, &form); errs.Has() {
		form.Password = ""
		web.Render(c, http.StatusOK, "user/add", gin.H{"Form": form, "Errors": errs, "Roles": authdomain.Roles()})
		return
	}

	role, _ := authdomain.ParseRole(form.Role)
	_, err := h.svc.Create(c.Request.Context(), principal, application.CreateUserCommand{
		Username: form.Username,
		Password: form.Password,
		Fullname: form.Fullname,
		Role:     role,
	})
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		web.AddFlash(c, authdomain.FlashError, "Username "+form.Username+" already exists")
		web.RedirectTo(c, addPath)
	case err != nil:
		web.ServerError(c, err)
	default:
		web.RedirectTo(c, listPath)
	}
}

// UpdateForm 更新表单，密码字段始终为空
func (h *Handler) UpdateForm(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "user")
	if !ok {
		return
	}
	if principal.Is(id) {
		h.rejectSelf(c)
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, id)
		return
	}
	form := UpdateUserForm{
		Username: user.Username,
		Fullname: user.Fullname,
		Role:     user.Role.String(),
	}
	web.Render(c, http.StatusOK, "user/update", gin.H{"ID": id, "Form": form, "Roles": authdomain.Roles()})
}

// Update 校验并保存用户
func (h *Handler) Update(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "user")
	if !ok {
		return
	}
	if principal.Is(id) {
		h.rejectSelf(c)
		return
	}
	var form UpdateUserForm
	if errs := web.BindForm(c, &form); errs.Has() {
		form.Password = ""
		web.Render(c, http.StatusOK, "user/update", gin.H{"ID": id, "Form": form, "Errors": errs, "Roles": authdomain.Roles()})
		return
	}

	role, _ := authdomain.ParseRole(form.Role)
	_, err := h.svc.Update(c.Request.Context(), principal, id, application.UpdateUserCommand{
		Password: form.Password,
		Fullname: form.Fullname,
		Role:     role,
	})
	if err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

// Delete 删除用户
func (h *Handler) Delete(c *gin.Context, principal *authdomain.Principal) {
	id, ok := web.ParseID(c, "user")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal, id); err != nil {
		h.fail(c, err, id)
		return
	}
	web.RedirectTo(c, listPath)
}

func (h *Handler) rejectSelf(c *gin.Context) {
	web.AddFlash(c, authdomain.FlashError, domain.ErrSelfAction.Error())
	web.RedirectTo(c, listPath)
}

func (h *Handler) fail(c *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, domain.ErrSelfAction):
		h.rejectSelf(c)
	case errors.Is(err, domain.ErrNotFound):
		web.NotFound(c, web.InvalidID("user", id))
	default:
		web.ServerError(c, err)
	}
}
