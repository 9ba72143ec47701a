package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Funcs 模板函数
func Funcs() template.FuncMap {
	return template.FuncMap{
		"num":   formatNumber,
		"date":  formatDate,
		"field": formField,
	}
}

// ParseTemplates 从文件系统解析全部页面模板
func ParseTemplates(fsys fs.FS, patterns ...string) (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case decimal.NullDecimal:
		return DecimalString(n)
	case decimal.Decimal:
		return n.String()
	case *int:
		return IntString(n)
	case int:
		return fmt.Sprint(n)
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// formField 渲染带标签与错误提示的输入框，password 类型从不回显取值
func formField(label, name, typ, value string, errs FieldErrors) template.HTML {
	if typ == "password" {
		value = ""
	}
	var b strings.Builder
	esc := template.HTMLEscapeString
	fmt.Fprintf(&b, `<div class="form-group"><label for="%s">%s</label>`, esc(name), esc(label))
	fmt.Fprintf(&b, `<input type="%s" id="%s" name="%s" value="%s" class="form-control">`, esc(typ), esc(name), esc(name), esc(value))
	if msg, ok := errs[name]; ok {
		fmt.Fprintf(&b, `<p class="text-danger">%s</p>`, esc(msg))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
