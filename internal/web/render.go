package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/pkg/logger"
)

// AnonymousName 未登录时页面展示的用户名
const AnonymousName = "anonymous"

// ForbiddenMessage 无权访问时的提示
const ForbiddenMessage = "You are not authorized for the requested data."

// Render 渲染模板，并注入当前用户与闪存消息
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = FieldErrors{}
	}
	principal := PrincipalFrom(c)
	data["Principal"] = principal
	data["CurrentUser"] = displayName(principal)
	data["IsAdmin"] = principal.IsAdmin()

	flashes := popFlashes(c)
	data["Flashes"] = flashes
	for _, f := range flashes {
		if f.Kind == authdomain.FlashError {
			data["FlashError"] = f.Message
		}
	}
	c.HTML(status, name, data)
}

// NotFound 渲染 404 页面
func NotFound(c *gin.Context, message string) {
	Render(c, http.StatusNotFound, "error/404", gin.H{"Message": message})
	c.Abort()
}

// Forbidden 渲染 403 页面
func Forbidden(c *gin.Context) {
	Render(c, http.StatusForbidden, "error/403", gin.H{"Message": ForbiddenMessage})
	c.Abort()
}

// ServerError 记录错误并渲染 500 页面
func ServerError(c *gin.Context, err error) {
	logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
	Render(c, http.StatusInternalServerError, "error/500", gin.H{"Message": "Internal server error"})
	c.Abort()
}

// RedirectTo 302 跳转
func RedirectTo(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// ParseID 解析路径参数 id，非法取值渲染 404 并返回 false
func ParseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		NotFound(c, "Invalid "+entity+" Id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

func displayName(p *authdomain.Principal) string {
	if p == nil {
		return AnonymousName
	}
	return p.DisplayName()
}

// InvalidID 未知 id 的提示
func InvalidID(entity string, id uint) string {
	return fmt.Sprintf("Invalid %s Id: %d", entity, id)
}
