// Package assets 内嵌页面模板与静态资源
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// TemplatePatterns 页面模板匹配模式
var TemplatePatterns = []string{"templates/*.tmpl", "templates/*/*.tmpl"}

// Templates 模板文件系统
func Templates() fs.FS {
	return files
}

// CSS 样式文件系统，根目录为 static/css
func CSS() fs.FS {
	sub, err := fs.Sub(files, "static/css")
	if err != nil {
		panic(err)
	}
	return sub
}
