package web

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	userdomain "github.com/wyfcoding/poseidon/internal/user/domain"
)

// FieldErrors 字段名到错误消息的映射，字段名取 form 标签
type FieldErrors map[string]string

// Has 是否存在错误
func (fe FieldErrors) Has() bool {
	return len(fe) > 0
}

var registerOnce sync.Once

// RegisterValidators 在 gin 的校验引擎上注册自定义规则，重复调用无副作用
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return userdomain.ValidPassword(fl.Field().String())
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, err := authdomain.ParseRole(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("alnum_username", func(fl validator.FieldLevel) bool {
			return userdomain.ValidUsername(fl.Field().String())
		})
		_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
			return FitsAmount(fl.Field().String())
		})
	})
}

// BindForm 绑定并校验表单，返回字段级错误
func BindForm(c *gin.Context, form any) FieldErrors {
	if err := c.ShouldBind(form); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate 将校验错误转换为字段级消息
func Translate(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, ok := out[fe.Field()]; ok {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is mandatory", fe.Field())
	case "number":
		return "must be an integer"
	case "numeric":
		return "must be a number"
	case "datetime":
		return "must be a date (yyyy-MM-ddTHH:mm)"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "strongpassword":
		return userdomain.ErrWeakPassword.Error()
	case "alnum_username":
		return userdomain.ErrInvalidUsername.Error()
	case "role":
		return "Role must be ADMIN or USER"
	case "amount":
		return fmt.Sprintf("must have at most %d integer digits and %d decimals", AmountIntegerDigits, AmountScale)
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
